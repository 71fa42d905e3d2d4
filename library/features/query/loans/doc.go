// Package loans implements the Loans query use case: the owner's loans to contacts with resolved
// contact names, an optional status filter and statistics.
package loans

// Package borrowedbooks implements the Borrowed Books query use case: the books the owner has
// borrowed from contacts or external sources, with an optional status filter and statistics.
package borrowedbooks

// Package core is the functional core of the library: domain events, the projections every
// decision and read model replays, the custody rules that span loans, borrowed books and loan
// requests, and the error taxonomy decisions report with.
//
// Nothing in here does I/O. Decide and Project functions in the feature slices take a
// history of DomainEvents and return a DecisionResult or a read model.
package core

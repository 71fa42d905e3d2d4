// Package removebook implements the Remove Book use case.
//
// Removal cascades: once BookRemoved is appended, every projection drops the book together with its
// loans, borrow records and loan requests.
package removebook

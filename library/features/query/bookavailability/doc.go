// Package bookavailability implements the Book Availability query use case.
//
// It answers whether a book is currently out of its owner's hands, and to whom. The owner sees the
// counterpart, a member the library is shared with sees only the status of lendable books.
package bookavailability

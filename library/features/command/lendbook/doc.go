// Package lendbook implements the Lend Book use case: an owner lends a book to one of their contacts.
//
// The consistency boundary is the book (all three custody ledgers) plus the owner's address book, so a
// contact created on the fly and the loan are appended atomically, and two concurrent loans of the same
// book cannot both succeed.
package lendbook

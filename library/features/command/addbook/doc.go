// Package addbook implements the Add Book use case, a create-or-upsert of a catalogued book.
//
// A book the owner has borrowed before (it has borrow history) can be entered again with the same
// title and ISBN. Entering it as borrowed opens a new borrow record, entering it as not borrowed is the
// purchase path that clears its borrow history. Any other duplicate is a conflict.
//
// An optional MetadataLookup fills empty title, author and publisher from the ISBN before deciding.
package addbook

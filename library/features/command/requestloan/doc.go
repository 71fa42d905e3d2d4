// Package requestloan implements the Request Loan use case: a member asks the owner of a book to lend
// it to them. The owner must share their library with the requester through a linked contact.
package requestloan

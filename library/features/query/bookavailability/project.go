package bookavailability

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound = "book not found"
)

// Project resolves the availability of the queried book.
//
// Query Logic:
//
//	GIVEN: the book with its custody records, the owner's contacts and the member directory
//	WHEN: BookAvailability is queried
//	THEN: the owner gets status, dates and counterpart name
//	THEN: a member the owner shares with gets status and dates of a lendable book in the owner's collection
//	ERROR: "book not found" for anyone else, and for unknown or removed books
//	ERROR: "book not found" for a non-owner once a borrowed book went back to its source
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) (BookAvailability, error) {
	book, ok := core.ProjectLibrary(history).Book(query.BookID)
	if !ok {
		return BookAvailability{}, core.NotFound(queryType, failureReasonNotFound)
	}

	contacts := core.ProjectContactBook(history)
	isOwner := book.OwnerID == query.ViewerID

	if !isOwner && !(book.IsLendable && contacts.SharingWith(book.OwnerID, query.ViewerID)) {
		return BookAvailability{}, core.NotFound(queryType, failureReasonNotFound)
	}

	if !isOwner && !core.IsVisibleInOwnerCollection(book) {
		return BookAvailability{}, core.NotFound(queryType, failureReasonNotFound)
	}

	availability := core.ResolveAvailability(book, query.Now)
	result := BookAvailability{
		BookID:         book.BookID,
		Status:         availability.Status,
		CustodyStatus:  availability.CustodyStatus,
		Since:          availability.Since,
		DueDate:        availability.DueDate,
		SequenceNumber: maxSequenceNumber,
	}

	if isOwner {
		result.CounterpartName = availability.CounterpartName(contacts, core.ProjectMembers(history))
	}

	return result, nil
}

// BuildEventFilter is the book, its owner's address book and the member directory.
func BuildEventFilter(bookID core.BookIDString, ownerID core.UserIDString) eventstore.Filter {
	return eventstore.Union(core.BookScope(bookID), core.OwnerContactsScope(ownerID), core.AllMembersScope())
}

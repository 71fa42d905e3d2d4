package sharedlibrary

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotShared = "library is not shared with you"
)

// Project builds the viewer's view of the owner's library.
//
// Query Logic:
//
//	GIVEN: the owner's collection, their contacts and the member directory
//	WHEN: SharedLibrary is queried
//	THEN: lendable visible books are listed with their current loan, personal fields redacted
//	ERROR: "library is not shared with you" without a sharing contact of the owner linked to the viewer (forbidden)
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) (SharedLibrary, error) {
	if !core.ProjectContactBook(history).SharingWith(query.OwnerID, query.ViewerID) {
		return SharedLibrary{}, core.Forbidden(queryType, failureReasonNotShared)
	}

	result := SharedLibrary{
		OwnerID:        query.OwnerID,
		OwnerUsername:  core.ProjectMembers(history).UsernameOf(query.OwnerID),
		Books:          make([]BookInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, book := range core.ProjectLibrary(history).BooksOwnedBy(query.OwnerID) {
		if !book.IsLendable || !core.IsVisibleInOwnerCollection(book) {
			continue
		}

		info := BookInfo{
			BookID:      book.BookID,
			Title:       book.Title,
			Author:      book.Author,
			Publisher:   book.Publisher,
			ISBN:        book.ISBN,
			IsAvailable: true,
		}

		if availability := core.ResolveAvailability(book, query.Now); availability.IsOut() {
			info.IsAvailable = false
			info.CurrentLoan = &CurrentLoan{Status: availability.Status, DueDate: availability.DueDate}
		}

		result.Books = append(result.Books, info)
	}

	result.Count = len(result.Books)

	return result, nil
}

// BuildEventFilter is the owner's collection plus the member directory.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return eventstore.Union(core.OwnerLibraryScope(ownerID), core.AllMembersScope())
}

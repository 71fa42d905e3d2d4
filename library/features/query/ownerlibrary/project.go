package ownerlibrary

import (
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project builds the owner's collection view.
//
// Query Logic:
//
//	GIVEN: the owner's books with all custody records, their contacts and the member directory
//	WHEN: OwnerLibrary is queried
//	THEN: every visible book is listed with its availability, in the order it was added
//	EXCLUDES: books with borrow history of which nothing is still borrowed in
//	EXCLUDES: books not matching the search, if one is given
//	INCLUDES: statistics over the visible books matching the search
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) OwnerLibrary {
	contacts := core.ProjectContactBook(history)
	members := core.ProjectMembers(history)

	result := OwnerLibrary{
		Books:          make([]BookInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, book := range core.ProjectLibrary(history).BooksOwnedBy(query.OwnerID) {
		if !core.IsVisibleInOwnerCollection(book) || !matches(book, query.Search) {
			continue
		}

		availability := core.ResolveAvailability(book, query.Now)
		result.Books = append(result.Books, BookInfo{
			BookID:        book.BookID,
			Title:         book.Title,
			Author:        book.Author,
			Publisher:     book.Publisher,
			ISBN:          book.ISBN,
			Barcode:       book.Barcode,
			IsLendable:    book.IsLendable,
			Rating:        book.Rating,
			PersonalNotes: book.PersonalNotes,
			ReadStatus:    book.ReadStatus,
			AddedAt:       book.AddedAt,
			Availability: AvailabilityInfo{
				Status:          availability.Status,
				CustodyStatus:   availability.CustodyStatus,
				CounterpartName: availability.CounterpartName(contacts, members),
				Since:           availability.Since,
				DueDate:         availability.DueDate,
			},
		})

		result.Statistics.count(book, availability)
	}

	result.Count = len(result.Books)

	return result
}

func (s *Statistics) count(book core.Book, availability core.Availability) {
	s.Total++

	switch {
	case availability.IsOut():
		s.LoanedOut++
	case availability.Status == core.AvailabilityBorrowedFromContact:
		s.BorrowedIn++
	default:
		s.InPossession++
	}

	if book.IsLendable {
		s.Lendable++
	}
}

func matches(book core.Book, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}

	for _, field := range []string{book.Title, book.Author, book.ISBN, book.Barcode} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// BuildEventFilter is the owner's whole collection plus the member directory for member names.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return eventstore.Union(core.OwnerLibraryScope(ownerID), core.AllMembersScope())
}

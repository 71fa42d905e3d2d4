package borrowedbooks

import (
	"slices"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project lists the owner's borrow records, newest first.
// The source shows the contact's current name when the contact still exists, else the name recorded at borrow time.
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) BorrowedBooks {
	contacts := core.ProjectContactBook(history)

	result := BorrowedBooks{
		BorrowedBooks:  make([]BorrowedBookInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, book := range core.ProjectLibrary(history).BooksOwnedBy(query.OwnerID) {
		for _, borrow := range book.Borrows {
			status := borrow.StatusAt(query.Now)
			result.Statistics.count(status)

			if query.Status != "" && status != query.Status {
				continue
			}

			sourceName := contacts.NameOf(borrow.ContactID)
			if sourceName == "" {
				sourceName = borrow.SourceName
			}

			result.BorrowedBooks = append(result.BorrowedBooks, BorrowedBookInfo{
				BorrowID:           borrow.BorrowID,
				BookID:             book.BookID,
				BookTitle:          book.Title,
				ContactID:          borrow.ContactID,
				SourceName:         sourceName,
				BorrowedAt:         borrow.BorrowedAt,
				ExpectedReturnDate: borrow.ExpectedReturnDate,
				ReturnDate:         borrow.ReturnDate,
				Status:             status,
				Notes:              borrow.Notes,
			})
		}
	}

	slices.SortStableFunc(result.BorrowedBooks, func(a, b BorrowedBookInfo) int {
		return b.BorrowedAt.Compare(a.BorrowedAt)
	})

	result.Count = len(result.BorrowedBooks)

	return result
}

func (s *Statistics) count(status core.CustodyStatus) {
	s.Total++

	switch status {
	case core.CustodyActive:
		s.Active++
	case core.CustodyOverdue:
		s.Overdue++
	case core.CustodyReturned:
		s.Returned++
	}
}

// BuildEventFilter is the owner's collection, which includes their contacts.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return core.OwnerLibraryScope(ownerID)
}

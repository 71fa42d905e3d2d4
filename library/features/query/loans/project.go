package loans

import (
	"slices"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project lists the owner's loans, newest loan date first.
//
// Query Logic:
//
//	GIVEN: the owner's books with their loans and the owner's contacts
//	WHEN: Loans is queried
//	THEN: every loan with the status derived at Now is listed
//	EXCLUDES: loans not in the requested status, if one is given
//	EXCLUDES: loans of removed books
//	INCLUDES: statistics over all the owner's loans
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) Loans {
	contacts := core.ProjectContactBook(history)

	result := Loans{
		Loans:          make([]LoanInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, book := range core.ProjectLibrary(history).BooksOwnedBy(query.OwnerID) {
		for _, loan := range book.Loans {
			status := loan.StatusAt(query.Now)
			result.Statistics.count(status)

			if query.Status != "" && status != query.Status {
				continue
			}

			result.Loans = append(result.Loans, LoanInfo{
				LoanID:      loan.LoanID,
				BookID:      book.BookID,
				BookTitle:   book.Title,
				ContactID:   loan.ContactID,
				ContactName: contacts.NameOf(loan.ContactID),
				LoanDate:    loan.LoanDate,
				DueDate:     loan.DueDate,
				ReturnDate:  loan.ReturnDate,
				Status:      status,
				Notes:       loan.Notes,
			})
		}
	}

	slices.SortStableFunc(result.Loans, func(a, b LoanInfo) int {
		return b.LoanDate.Compare(a.LoanDate)
	})

	result.Count = len(result.Loans)

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

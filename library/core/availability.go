package core

import (
	"time"
)

// AvailabilityStatus answers "is the book out of the owner's hands, and how".
type AvailabilityStatus string

const (
	AvailabilityInPossession        AvailabilityStatus = "IN_POSSESSION"
	AvailabilityLoanedToContact     AvailabilityStatus = "LOANED_TO_CONTACT"
	AvailabilityLentToMember        AvailabilityStatus = "LENT_TO_MEMBER"
	AvailabilityBorrowedFromContact AvailabilityStatus = "BORROWED_FROM_CONTACT"
)

// Availability is the single custody status of a book at a point in time.
// Only the fields of the matching mechanism are set.
type Availability struct {
	Status        AvailabilityStatus
	CustodyStatus CustodyStatus
	LoanID        LoanIDString
	BorrowID      BorrowIDString
	RequestID     RequestIDString
	ContactID     ContactIDString
	MemberID      UserIDString
	SourceName    string
	Since         OptionalTS
	DueDate       OptionalTS
}

// IsOut reports whether someone other than the owner holds the book.
func (a Availability) IsOut() bool {
	return a.Status == AvailabilityLoanedToContact || a.Status == AvailabilityLentToMember
}

// ResolveAvailability applies the custody precedence, first match wins:
// active loan, accepted loan request (treated as loaned), active borrow, in possession.
func ResolveAvailability(book Book, now time.Time) Availability {
	if loan, ok := book.ActiveLoan(); ok {
		return Availability{
			Status:        AvailabilityLoanedToContact,
			CustodyStatus: loan.StatusAt(now),
			LoanID:        loan.LoanID,
			ContactID:     loan.ContactID,
			Since:         timeRef(loan.LoanDate),
			DueDate:       loan.DueDate,
		}
	}

	if request, ok := book.AcceptedRequest(); ok {
		return Availability{
			Status:        AvailabilityLentToMember,
			CustodyStatus: DeriveCustodyStatus(nil, request.DueDate, now),
			RequestID:     request.RequestID,
			MemberID:      request.RequesterID,
			Since:         request.RespondedAt,
			DueDate:       request.DueDate,
		}
	}

	if borrow, ok := book.ActiveBorrow(); ok {
		return Availability{
			Status:        AvailabilityBorrowedFromContact,
			CustodyStatus: borrow.StatusAt(now),
			BorrowID:      borrow.BorrowID,
			ContactID:     borrow.ContactID,
			SourceName:    borrow.SourceName,
			Since:         timeRef(borrow.BorrowedAt),
			DueDate:       borrow.ExpectedReturnDate,
		}
	}

	return Availability{Status: AvailabilityInPossession}
}

// IsVisibleInOwnerCollection is the visibility filter of the owner's listing, search and statistics.
// A book is hidden iff it has borrow history and none of it is still active: it was borrowed and
// given back, so it never belonged to this collection. A new active borrow makes it visible again.
func IsVisibleInOwnerCollection(book Book) bool {
	if !book.HasBorrowHistory() {
		return true
	}

	_, borrowedIn := book.ActiveBorrow()

	return borrowedIn
}

// CounterpartName resolves who holds the book, or whom it was borrowed from, to a display name.
func (a Availability) CounterpartName(contacts ContactBook, members Members) string {
	switch a.Status {
	case AvailabilityLoanedToContact:
		return contacts.NameOf(a.ContactID)
	case AvailabilityLentToMember:
		return members.UsernameOf(a.MemberID)
	case AvailabilityBorrowedFromContact:
		if name := contacts.NameOf(a.ContactID); name != "" {
			return name
		}

		return a.SourceName
	default:
		return ""
	}
}

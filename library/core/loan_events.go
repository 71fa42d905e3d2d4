package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookLentToContactEventType = "BookLentToContact"
	LoanReturnedEventType      = "LoanReturned"
)

// BookLentToContact represents the owner handing their book to a personal contact.
type BookLentToContact struct {
	EventType  EventTypeString
	LoanID     LoanIDString
	BookID     BookIDString
	OwnerID    UserIDString
	ContactID  ContactIDString
	LoanDate   time.Time
	DueDate    OptionalTS `json:",omitempty"`
	Notes      string
	OccurredAt OccurredAtTS
}

// BuildBookLentToContact creates a new BookLentToContact event.
func BuildBookLentToContact(
	loanID uuid.UUID,
	bookID BookIDString,
	ownerID UserIDString,
	contactID ContactIDString,
	loanDate time.Time,
	dueDate *time.Time,
	notes string,
	occurredAt time.Time,
) BookLentToContact {

	return BookLentToContact{
		EventType:  BookLentToContactEventType,
		LoanID:     loanID.String(),
		BookID:     bookID,
		OwnerID:    ownerID,
		ContactID:  contactID,
		LoanDate:   ToOccurredAt(loanDate),
		DueDate:    ToOptionalTS(dueDate),
		Notes:      notes,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookLentToContact) IsEventType() string {
	return BookLentToContactEventType
}

func (e BookLentToContact) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LoanReturned closes a loan. A loan is returned at most once.
type LoanReturned struct {
	EventType  EventTypeString
	LoanID     LoanIDString
	BookID     BookIDString
	OwnerID    UserIDString
	ReturnDate time.Time
	OccurredAt OccurredAtTS
}

// BuildLoanReturned creates a new LoanReturned event.
func BuildLoanReturned(loan LoanRecord, returnDate time.Time, occurredAt time.Time) LoanReturned {
	return LoanReturned{
		EventType:  LoanReturnedEventType,
		LoanID:     loan.LoanID,
		BookID:     loan.BookID,
		OwnerID:    loan.OwnerID,
		ReturnDate: ToOccurredAt(returnDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e LoanReturned) IsEventType() string {
	return LoanReturnedEventType
}

func (e LoanReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

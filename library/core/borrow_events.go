package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookBorrowedFromContactEventType = "BookBorrowedFromContact"
	BorrowedBookReturnedEventType    = "BorrowedBookReturned"
	BorrowHistoryClearedEventType    = "BorrowHistoryCleared"
)

// BookBorrowedFromContact records that the owner holds a catalogued book borrowed from an external source.
// ContactID is empty for free-text sources, SourceName always carries the display name.
type BookBorrowedFromContact struct {
	EventType          EventTypeString
	BorrowID           BorrowIDString
	BookID             BookIDString
	OwnerID            UserIDString
	ContactID          ContactIDString
	SourceName         string
	BorrowedAt         time.Time
	ExpectedReturnDate OptionalTS `json:",omitempty"`
	Notes              string
	OccurredAt         OccurredAtTS
}

// BuildBookBorrowedFromContact creates a new BookBorrowedFromContact event.
func BuildBookBorrowedFromContact(
	borrowID uuid.UUID,
	bookID BookIDString,
	ownerID UserIDString,
	source ResolvedContact,
	borrowedAt time.Time,
	expectedReturnDate *time.Time,
	notes string,
	occurredAt time.Time,
) BookBorrowedFromContact {

	return BookBorrowedFromContact{
		EventType:          BookBorrowedFromContactEventType,
		BorrowID:           borrowID.String(),
		BookID:             bookID,
		OwnerID:            ownerID,
		ContactID:          source.ContactID,
		SourceName:         source.Name,
		BorrowedAt:         ToOccurredAt(borrowedAt),
		ExpectedReturnDate: ToOptionalTS(expectedReturnDate),
		Notes:              notes,
		OccurredAt:         ToOccurredAt(occurredAt),
	}
}

func (e BookBorrowedFromContact) IsEventType() string {
	return BookBorrowedFromContactEventType
}

func (e BookBorrowedFromContact) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BorrowedBookReturned records that a borrowed book went back to its source.
type BorrowedBookReturned struct {
	EventType  EventTypeString
	BorrowID   BorrowIDString
	BookID     BookIDString
	OwnerID    UserIDString
	ReturnDate time.Time
	OccurredAt OccurredAtTS
}

// BuildBorrowedBookReturned creates a new BorrowedBookReturned event.
func BuildBorrowedBookReturned(borrow BorrowRecord, returnDate time.Time, occurredAt time.Time) BorrowedBookReturned {
	return BorrowedBookReturned{
		EventType:  BorrowedBookReturnedEventType,
		BorrowID:   borrow.BorrowID,
		BookID:     borrow.BookID,
		OwnerID:    borrow.OwnerID,
		ReturnDate: ToOccurredAt(returnDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BorrowedBookReturned) IsEventType() string {
	return BorrowedBookReturnedEventType
}

func (e BorrowedBookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BorrowHistoryCleared deletes every borrow record of a book: the owner now owns it outright.
// Irreversible, the cleared records are gone from every read path and decision.
type BorrowHistoryCleared struct {
	EventType  EventTypeString
	BookID     BookIDString
	OwnerID    UserIDString
	OccurredAt OccurredAtTS
}

// BuildBorrowHistoryCleared creates a new BorrowHistoryCleared event.
func BuildBorrowHistoryCleared(bookID BookIDString, ownerID UserIDString, occurredAt time.Time) BorrowHistoryCleared {
	return BorrowHistoryCleared{
		EventType:  BorrowHistoryClearedEventType,
		BookID:     bookID,
		OwnerID:    ownerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BorrowHistoryCleared) IsEventType() string {
	return BorrowHistoryClearedEventType
}

func (e BorrowHistoryCleared) HasOccurredAt() time.Time {
	return e.OccurredAt
}

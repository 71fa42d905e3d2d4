package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookAddedEventType              = "BookAdded"
	BookLendabilityChangedEventType = "BookLendabilityChanged"
	BookRemovedEventType            = "BookRemoved"
)

// BookFields are the catalogue fields of a book as entered by its owner.
type BookFields struct {
	Title         string
	ISBN          string
	Barcode       string
	Author        string
	Publisher     string
	IsLendable    bool
	Rating        int
	PersonalNotes string
	ReadStatus    string
}

// BookAdded represents a book entering its owner's catalogue. Ownership never changes afterward.
type BookAdded struct {
	EventType     EventTypeString
	BookID        BookIDString
	OwnerID       UserIDString
	Title         string
	ISBN          string
	Barcode       string
	Author        string
	Publisher     string
	IsLendable    bool
	Rating        int
	PersonalNotes string
	ReadStatus    string
	OccurredAt    OccurredAtTS
}

// BuildBookAdded creates a new BookAdded event.
func BuildBookAdded(bookID uuid.UUID, ownerID UserIDString, fields BookFields, occurredAt time.Time) BookAdded {
	return BookAdded{
		EventType:     BookAddedEventType,
		BookID:        bookID.String(),
		OwnerID:       ownerID,
		Title:         fields.Title,
		ISBN:          fields.ISBN,
		Barcode:       fields.Barcode,
		Author:        fields.Author,
		Publisher:     fields.Publisher,
		IsLendable:    fields.IsLendable,
		Rating:        fields.Rating,
		PersonalNotes: fields.PersonalNotes,
		ReadStatus:    fields.ReadStatus,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e BookAdded) IsEventType() string {
	return BookAddedEventType
}

func (e BookAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookLendabilityChanged toggles whether linked members may request the book.
type BookLendabilityChanged struct {
	EventType  EventTypeString
	BookID     BookIDString
	OwnerID    UserIDString
	IsLendable bool
	OccurredAt OccurredAtTS
}

// BuildBookLendabilityChanged creates a new BookLendabilityChanged event.
func BuildBookLendabilityChanged(bookID BookIDString, ownerID UserIDString, isLendable bool, occurredAt time.Time) BookLendabilityChanged {
	return BookLendabilityChanged{
		EventType:  BookLendabilityChangedEventType,
		BookID:     bookID,
		OwnerID:    ownerID,
		IsLendable: isLendable,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookLendabilityChanged) IsEventType() string {
	return BookLendabilityChangedEventType
}

func (e BookLendabilityChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// BookRemoved deletes a book. Every custody record of the book goes with it.
type BookRemoved struct {
	EventType  EventTypeString
	BookID     BookIDString
	OwnerID    UserIDString
	OccurredAt OccurredAtTS
}

// BuildBookRemoved creates a new BookRemoved event.
func BuildBookRemoved(bookID BookIDString, ownerID UserIDString, occurredAt time.Time) BookRemoved {
	return BookRemoved{
		EventType:  BookRemovedEventType,
		BookID:     bookID,
		OwnerID:    ownerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookRemoved) IsEventType() string {
	return BookRemovedEventType
}

func (e BookRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

package addbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the owner's catalogue.
// IsBorrowed is nil when the caller says nothing about custody.
type Command struct {
	BookID             uuid.UUID
	OwnerID            core.UserIDString
	Fields             core.BookFields
	IsBorrowed         *bool
	BorrowID           uuid.UUID
	BorrowSource       core.ContactRef
	NewContactID       uuid.UUID
	BorrowedAt         core.OptionalTS
	ExpectedReturnDate core.OptionalTS
	Notes              string
	OccurredAt         core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command for a book without custody information.
func BuildCommand(bookID uuid.UUID, ownerID core.UserIDString, fields core.BookFields, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		OwnerID:    ownerID,
		Fields:     fields,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// AsBorrowed marks the book as borrowed from source. A nil borrowedAt means now.
func (c Command) AsBorrowed(
	borrowID uuid.UUID,
	source core.ContactRef,
	newContactID uuid.UUID,
	borrowedAt *time.Time,
	expectedReturnDate *time.Time,
	notes string,
) Command {

	borrowed := true
	c.IsBorrowed = &borrowed
	c.BorrowID = borrowID
	c.BorrowSource = source
	c.NewContactID = newContactID
	c.BorrowedAt = core.ToOptionalTS(borrowedAt)
	c.ExpectedReturnDate = core.ToOptionalTS(expectedReturnDate)
	c.Notes = notes

	return c
}

// AsOwned marks the book as not borrowed, which clears the borrow history of a re-entered book.
func (c Command) AsOwned() Command {
	borrowed := false
	c.IsBorrowed = &borrowed

	return c
}

package lendbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "LendBook"
)

// Command represents the intent to lend a book to a contact.
// NewContactID is used only if the contact reference creates a contact.
type Command struct {
	LoanID       uuid.UUID
	OwnerID      core.UserIDString
	BookID       uuid.UUID
	Contact      core.ContactRef
	NewContactID uuid.UUID
	LoanDate     core.OptionalTS
	DueDate      core.OptionalTS
	Notes        string
	OccurredAt   core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters. A nil loanDate means now.
func BuildCommand(
	loanID uuid.UUID,
	ownerID core.UserIDString,
	bookID uuid.UUID,
	contact core.ContactRef,
	newContactID uuid.UUID,
	loanDate *time.Time,
	dueDate *time.Time,
	notes string,
	occurredAt time.Time,
) Command {

	return Command{
		LoanID:       loanID,
		OwnerID:      ownerID,
		BookID:       bookID,
		Contact:      contact,
		NewContactID: newContactID,
		LoanDate:     core.ToOptionalTS(loanDate),
		DueDate:      core.ToOptionalTS(dueDate),
		Notes:        notes,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}

package returnborrowedbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "ReturnBorrowedBook"
)

// Command represents the intent to mark a borrowed book as returned. A nil ReturnDate means now.
type Command struct {
	OwnerID    core.UserIDString
	BorrowID   uuid.UUID
	ReturnDate core.OptionalTS
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(ownerID core.UserIDString, borrowID uuid.UUID, returnDate *time.Time, occurredAt time.Time) Command {
	return Command{
		OwnerID:    ownerID,
		BorrowID:   borrowID,
		ReturnDate: core.ToOptionalTS(returnDate),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

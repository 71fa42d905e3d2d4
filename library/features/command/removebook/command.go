package removebook

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to remove a book from the catalogue.
type Command struct {
	OwnerID    core.UserIDString
	BookID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(ownerID core.UserIDString, bookID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		OwnerID:    ownerID,
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

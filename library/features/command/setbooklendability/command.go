package setbooklendability

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "SetBookLendability"
)

// Command represents the intent to change whether a book may be lent.
type Command struct {
	OwnerID    core.UserIDString
	BookID     uuid.UUID
	IsLendable bool
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(ownerID core.UserIDString, bookID uuid.UUID, isLendable bool, occurredAt time.Time) Command {
	return Command{
		OwnerID:    ownerID,
		BookID:     bookID,
		IsLendable: isLendable,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

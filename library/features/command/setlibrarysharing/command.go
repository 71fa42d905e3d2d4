package setlibrarysharing

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "SetLibrarySharing"
)

// Command represents the intent to share (or stop sharing) the owner's library with a linked contact.
type Command struct {
	OwnerID    core.UserIDString
	ContactID  uuid.UUID
	Shared     bool
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(ownerID core.UserIDString, contactID uuid.UUID, shared bool, occurredAt time.Time) Command {
	return Command{
		OwnerID:    ownerID,
		ContactID:  contactID,
		Shared:     shared,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

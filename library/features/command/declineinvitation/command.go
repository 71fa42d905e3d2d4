package declineinvitation

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "DeclineInvitation"
)

// Command represents the recipient's intent to decline an invitation.
type Command struct {
	InvitationID uuid.UUID
	ActorID      core.UserIDString
	OccurredAt   core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(invitationID uuid.UUID, actorID core.UserIDString, occurredAt time.Time) Command {
	return Command{
		InvitationID: invitationID,
		ActorID:      actorID,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}

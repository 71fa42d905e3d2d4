package acceptinvitation

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "AcceptInvitation"
)

// Command represents the recipient's intent to accept an invitation.
// SenderContactID and RecipientContactID are used only when a side needs a new contact.
type Command struct {
	InvitationID       uuid.UUID
	ActorID            core.UserIDString
	SenderContactID    uuid.UUID
	RecipientContactID uuid.UUID
	OccurredAt         core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	invitationID uuid.UUID,
	actorID core.UserIDString,
	senderContactID uuid.UUID,
	recipientContactID uuid.UUID,
	occurredAt time.Time,
) Command {

	return Command{
		InvitationID:       invitationID,
		ActorID:            actorID,
		SenderContactID:    senderContactID,
		RecipientContactID: recipientContactID,
		OccurredAt:         core.ToOccurredAt(occurredAt),
	}
}

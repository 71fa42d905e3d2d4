package sendinvitation

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "SendInvitation"
)

// Command represents the intent to invite another member.
type Command struct {
	InvitationID uuid.UUID
	SenderID     core.UserIDString
	RecipientID  core.UserIDString
	Message      string
	OccurredAt   core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	invitationID uuid.UUID,
	senderID core.UserIDString,
	recipientID core.UserIDString,
	message string,
	occurredAt time.Time,
) Command {

	return Command{
		InvitationID: invitationID,
		SenderID:     senderID,
		RecipientID:  recipientID,
		Message:      message,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}

package invitations

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// InvitationInfo represents one invitation.
type InvitationInfo struct {
	InvitationID      core.InvitationIDString `json:"invitation_id"`
	SenderID          core.UserIDString       `json:"sender_id"`
	SenderUsername    string                  `json:"sender_username"`
	RecipientID       core.UserIDString       `json:"recipient_id"`
	RecipientUsername string                  `json:"recipient_username"`
	Status            core.InvitationStatus   `json:"status"`
	Message           string                  `json:"message,omitempty"`
	SentAt            time.Time               `json:"sent_at"`
	RespondedAt       core.OptionalTS         `json:"responded_at,omitempty"`
}

// Invitations represents the query result.
type Invitations struct {
	Invitations          []InvitationInfo `json:"invitations"`
	Count                int              `json:"count"`
	PendingReceivedCount int              `json:"pending_received_count"`
	SequenceNumber       uint             `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r Invitations) GetSequenceNumber() uint {
	return r.SequenceNumber
}

package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvitationSentEventType      = "InvitationSent"
	InvitationAcceptedEventType  = "InvitationAccepted"
	InvitationDeclinedEventType  = "InvitationDeclined"
	InvitationCancelledEventType = "InvitationCancelled"
)

// InvitationSent represents a member asking another member to become linked contacts.
type InvitationSent struct {
	EventType    EventTypeString
	InvitationID InvitationIDString
	SenderID     UserIDString
	RecipientID  UserIDString
	Message      string
	OccurredAt   OccurredAtTS
}

// BuildInvitationSent creates a new InvitationSent event.
func BuildInvitationSent(
	invitationID uuid.UUID,
	senderID UserIDString,
	recipientID UserIDString,
	message string,
	occurredAt time.Time,
) InvitationSent {

	return InvitationSent{
		EventType:    InvitationSentEventType,
		InvitationID: invitationID.String(),
		SenderID:     senderID,
		RecipientID:  recipientID,
		Message:      message,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e InvitationSent) IsEventType() string {
	return InvitationSentEventType
}

func (e InvitationSent) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// InvitationResponded is the shape shared by the three terminal invitation events.
type InvitationResponded struct {
	EventType    EventTypeString
	InvitationID InvitationIDString
	SenderID     UserIDString
	RecipientID  UserIDString
	OccurredAt   OccurredAtTS
}

// InvitationAccepted is the terminal event of an accepted invitation.
type InvitationAccepted InvitationResponded

// InvitationDeclined is the terminal event of an invitation the recipient turned down.
type InvitationDeclined InvitationResponded

// InvitationCancelled is the terminal event of an invitation its sender withdrew.
type InvitationCancelled InvitationResponded

func buildInvitationResponded(eventType EventTypeString, invitation Invitation, occurredAt time.Time) InvitationResponded {
	return InvitationResponded{
		EventType:    eventType,
		InvitationID: invitation.InvitationID,
		SenderID:     invitation.SenderID,
		RecipientID:  invitation.RecipientID,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// BuildInvitationAccepted creates a new InvitationAccepted event.
func BuildInvitationAccepted(invitation Invitation, occurredAt time.Time) InvitationAccepted {
	return InvitationAccepted(buildInvitationResponded(InvitationAcceptedEventType, invitation, occurredAt))
}

// BuildInvitationDeclined creates a new InvitationDeclined event.
func BuildInvitationDeclined(invitation Invitation, occurredAt time.Time) InvitationDeclined {
	return InvitationDeclined(buildInvitationResponded(InvitationDeclinedEventType, invitation, occurredAt))
}

// BuildInvitationCancelled creates a new InvitationCancelled event.
func BuildInvitationCancelled(invitation Invitation, occurredAt time.Time) InvitationCancelled {
	return InvitationCancelled(buildInvitationResponded(InvitationCancelledEventType, invitation, occurredAt))
}

func (e InvitationAccepted) IsEventType() string { return InvitationAcceptedEventType }

func (e InvitationAccepted) HasOccurredAt() time.Time { return e.OccurredAt }

func (e InvitationDeclined) IsEventType() string { return InvitationDeclinedEventType }

func (e InvitationDeclined) HasOccurredAt() time.Time { return e.OccurredAt }

func (e InvitationCancelled) IsEventType() string { return InvitationCancelledEventType }

func (e InvitationCancelled) HasOccurredAt() time.Time { return e.OccurredAt }

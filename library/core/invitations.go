package core

import (
	"time"
)

// Invitation is the projected state of a ContactInvitation.
type Invitation struct {
	InvitationID InvitationIDString
	SenderID     UserIDString
	RecipientID  UserIDString
	Message      string
	Status       InvitationStatus
	SentAt       time.Time
	RespondedAt  OptionalTS
}

// Involves reports whether userID is the sender or the recipient.
func (i Invitation) Involves(userID UserIDString) bool {
	return i.SenderID == userID || i.RecipientID == userID
}

// Invitations holds the invitations of any number of members.
type Invitations struct {
	byID  map[InvitationIDString]*Invitation
	order []InvitationIDString
}

// ProjectInvitations replays the history into Invitations.
func ProjectInvitations(history DomainEvents) Invitations {
	inv := Invitations{byID: make(map[InvitationIDString]*Invitation)}

	for _, event := range history {
		switch e := event.(type) {
		case InvitationSent:
			inv.byID[e.InvitationID] = &Invitation{
				InvitationID: e.InvitationID,
				SenderID:     e.SenderID,
				RecipientID:  e.RecipientID,
				Message:      e.Message,
				Status:       InvitationStatusPending,
				SentAt:       e.OccurredAt,
			}
			inv.order = append(inv.order, e.InvitationID)

		case InvitationAccepted:
			inv.respond(e.InvitationID, InvitationStatusAccepted, e.OccurredAt)

		case InvitationDeclined:
			inv.respond(e.InvitationID, InvitationStatusDeclined, e.OccurredAt)

		case InvitationCancelled:
			inv.respond(e.InvitationID, InvitationStatusCancelled, e.OccurredAt)
		}
	}

	return inv
}

func (inv Invitations) respond(invitationID InvitationIDString, status InvitationStatus, at time.Time) {
	if i, ok := inv.byID[invitationID]; ok {
		respondedAt := at
		i.Status = status
		i.RespondedAt = &respondedAt
	}
}

// Get returns the invitation with invitationID.
func (inv Invitations) Get(invitationID InvitationIDString) (Invitation, bool) {
	i, ok := inv.byID[invitationID]
	if !ok {
		return Invitation{}, false
	}

	return *i, true
}

// PendingBetween reports whether a PENDING invitation exists between a and b in either direction.
func (inv Invitations) PendingBetween(a UserIDString, b UserIDString) bool {
	for _, i := range inv.byID {
		if i.Status == InvitationStatusPending && i.Involves(a) && i.Involves(b) {
			return true
		}
	}

	return false
}

// All returns every invitation in the order they were sent.
func (inv Invitations) All() []Invitation {
	all := make([]Invitation, 0, len(inv.order))
	for _, id := range inv.order {
		all = append(all, *inv.byID[id])
	}

	return all
}

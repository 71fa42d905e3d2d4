package invitations

import (
	"slices"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project lists the invitations of the queried box, newest first.
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) Invitations {
	members := core.ProjectMembers(history)

	result := Invitations{
		Invitations:    make([]InvitationInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, invitation := range core.ProjectInvitations(history).All() {
		if invitation.RecipientID == query.UserID && invitation.Status == core.InvitationStatusPending {
			result.PendingReceivedCount++
		}

		if !inBox(invitation, query) {
			continue
		}

		result.Invitations = append(result.Invitations, InvitationInfo{
			InvitationID:      invitation.InvitationID,
			SenderID:          invitation.SenderID,
			SenderUsername:    members.UsernameOf(invitation.SenderID),
			RecipientID:       invitation.RecipientID,
			RecipientUsername: members.UsernameOf(invitation.RecipientID),
			Status:            invitation.Status,
			Message:           invitation.Message,
			SentAt:            invitation.SentAt,
			RespondedAt:       invitation.RespondedAt,
		})
	}

	slices.Reverse(result.Invitations)
	result.Count = len(result.Invitations)

	return result
}

func inBox(invitation core.Invitation, query Query) bool {
	if query.Box == Sent {
		return invitation.SenderID == query.UserID &&
			invitation.Status != core.InvitationStatusDeclined &&
			invitation.Status != core.InvitationStatusCancelled
	}

	return invitation.RecipientID == query.UserID && invitation.Status == core.InvitationStatusPending
}

// BuildEventFilter is every invitation the user sent or received plus the member directory.
func BuildEventFilter(userID core.UserIDString) eventstore.Filter {
	return eventstore.Union(core.InvitationsOfScope(userID), core.AllMembersScope())
}

package acceptinvitation

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonInvitationNotFound = "invitation not found"
	failureReasonNotRecipient       = "only the recipient can accept an invitation"
	failureReasonNotPending         = "invitation is not pending"
)

// Decide implements the business logic to accept an invitation.
//
// Business Rules:
//
//	GIVEN: the invitation, both members and both address books
//	WHEN: AcceptInvitation is received from the recipient
//	THEN: per side ContactLinked or ContactAdded (or nothing for an existing link), then InvitationAccepted
//	ERROR: "invitation not found" if unknown or the actor is not a party (not found)
//	ERROR: "only the recipient can accept an invitation" (forbidden)
//	ERROR: "invitation is not pending" (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	invitation, ok := core.ProjectInvitations(history).Get(command.InvitationID.String())
	if !ok || !invitation.Involves(command.ActorID) {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonInvitationNotFound))
	}

	if invitation.RecipientID != command.ActorID {
		return core.ErrorDecision(core.Forbidden(commandType, failureReasonNotRecipient))
	}

	if invitation.Status != core.InvitationStatusPending {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonNotPending))
	}

	members := core.ProjectMembers(history)
	contacts := core.ProjectContactBook(history)

	_, _, senderSide := core.MatchInvitationContact(
		contacts,
		invitation.SenderID,
		memberOrBare(members, invitation.RecipientID),
		command.SenderContactID,
		command.OccurredAt,
	)

	_, _, recipientSide := core.MatchInvitationContact(
		contacts,
		invitation.RecipientID,
		memberOrBare(members, invitation.SenderID),
		command.RecipientContactID,
		command.OccurredAt,
	)

	events := append(senderSide, recipientSide...)
	accepted := core.BuildInvitationAccepted(invitation, command.OccurredAt)

	if len(events) == 0 {
		return core.SuccessDecision(accepted).WithEntityID(invitation.InvitationID)
	}

	return core.SuccessDecision(events[0], append(events[1:], accepted)...).WithEntityID(invitation.InvitationID)
}

// memberOrBare falls back to a member with only the id set, which still matches an existing link.
func memberOrBare(members core.Members, userID core.UserIDString) core.Member {
	if member, ok := members.Get(userID); ok {
		return member
	}

	return core.Member{UserID: userID}
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "invitation id", command.InvitationID),
		core.RequireID(commandType, "actor id", command.ActorID),
		core.RequireUUID(commandType, "sender contact id", command.SenderContactID),
		core.RequireUUID(commandType, "recipient contact id", command.RecipientContactID),
	)
}

// BuildEventFilter is the invitation plus the social graph between its parties.
// Unknown parties narrow it to the invitation alone.
func BuildEventFilter(
	invitationID core.InvitationIDString,
	senderID core.UserIDString,
	recipientID core.UserIDString,
) eventstore.Filter {

	if senderID == "" || recipientID == "" {
		return core.InvitationScope(invitationID)
	}

	return eventstore.Union(core.InvitationScope(invitationID), core.SocialGraphScope(senderID, recipientID))
}

package declineinvitation

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonInvitationNotFound = "invitation not found"
	failureReasonNotRecipient       = "only the recipient can decline an invitation"
	failureReasonNotPending         = "invitation is not pending"
)

// Decide implements the business logic to decline an invitation.
//
// Business Rules:
//
//	GIVEN: the invitation
//	WHEN: DeclineInvitation is received from the recipient
//	THEN: InvitationDeclined is generated
//	ERROR: "invitation not found" if unknown or the actor is not a party (not found)
//	ERROR: "only the recipient can decline an invitation" (forbidden)
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

	return core.SuccessDecision(
		core.BuildInvitationDeclined(invitation, command.OccurredAt),
	).WithEntityID(invitation.InvitationID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "invitation id", command.InvitationID),
		core.RequireID(commandType, "actor id", command.ActorID),
	)
}

// BuildEventFilter is the invitation itself.
func BuildEventFilter(invitationID core.InvitationIDString) eventstore.Filter {
	return core.InvitationScope(invitationID)
}

package sendinvitation

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonSelfInvitation   = "cannot invite yourself"
	failureReasonSenderUnknown    = "sender is not a registered member"
	failureReasonRecipientUnknown = "recipient is not a registered member"
	failureReasonAlreadyPending   = "a pending invitation already exists between these members"
	failureReasonAlreadyConnected = "members are already connected"
)

// Decide implements the business logic to send an invitation.
//
// Business Rules:
//
//	GIVEN: both members, their address books and the invitations between them
//	WHEN: SendInvitation is received
//	THEN: InvitationSent is generated, the invitation is PENDING
//	ERROR: "cannot invite yourself" (validation)
//	ERROR: "recipient is not a registered member", "sender is not a registered member" (not found)
//	ERROR: a PENDING invitation exists in either direction (conflict)
//	ERROR: either member already has a contact linked to the other (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	members := core.ProjectMembers(history)

	if _, ok := members.Get(command.RecipientID); !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonRecipientUnknown))
	}

	if _, ok := members.Get(command.SenderID); !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonSenderUnknown))
	}

	if core.ProjectInvitations(history).PendingBetween(command.SenderID, command.RecipientID) {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyPending))
	}

	contacts := core.ProjectContactBook(history)
	_, senderSide := contacts.ByLinkedUser(command.SenderID, command.RecipientID)
	_, recipientSide := contacts.ByLinkedUser(command.RecipientID, command.SenderID)

	if senderSide || recipientSide {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyConnected))
	}

	return core.SuccessDecision(
		core.BuildInvitationSent(
			command.InvitationID,
			command.SenderID,
			command.RecipientID,
			strings.TrimSpace(command.Message),
			command.OccurredAt,
		),
	).WithEntityID(command.InvitationID.String())
}

func validate(command Command) error {
	if err := errors.Join(
		core.RequireUUID(commandType, "invitation id", command.InvitationID),
		core.RequireID(commandType, "sender id", command.SenderID),
		core.RequireID(commandType, "recipient id", command.RecipientID),
	); err != nil {
		return err
	}

	if command.SenderID == command.RecipientID {
		return core.Invalid(commandType, failureReasonSelfInvitation)
	}

	return nil
}

// BuildEventFilter is the social graph between the two members: both member records, both address
// books and every invitation between them.
func BuildEventFilter(senderID core.UserIDString, recipientID core.UserIDString) eventstore.Filter {
	return core.SocialGraphScope(senderID, recipientID)
}

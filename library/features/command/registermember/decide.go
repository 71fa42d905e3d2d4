package registermember

import (
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonUsernameRequired  = "username is required"
	failureReasonAlreadyRegistered = "member is already registered"
	failureReasonUsernameTaken     = "username is already taken"
)

// Decide registers a member.
//
//	GIVEN: the member directory
//	WHEN: RegisterMember is received
//	THEN: MemberRegistered is generated
//	ERROR: "user id is required", "username is required" (validation)
//	ERROR: "member is already registered", "username is already taken" (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := core.RequireID(commandType, "user id", command.UserID); err != nil {
		return core.ErrorDecision(err)
	}

	username := strings.TrimSpace(command.Username)
	if username == "" {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonUsernameRequired))
	}

	members := core.ProjectMembers(history)

	if _, ok := members.Get(command.UserID); ok {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyRegistered))
	}

	if members.UsernameTaken(username) {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonUsernameTaken))
	}

	return core.SuccessDecision(
		core.BuildMemberRegistered(command.UserID, username, strings.TrimSpace(command.Email), command.OccurredAt),
	).WithEntityID(command.UserID)
}

// BuildEventFilter is the whole member directory, usernames are unique across it.
func BuildEventFilter() eventstore.Filter {
	return core.AllMembersScope()
}

package setlibrarysharing

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonContactNotFound  = "contact not found"
	failureReasonContactNotLinked = "contact is not linked to a member"
)

// Decide implements the business logic to toggle library sharing on a contact.
//
// Business Rules:
//
//	GIVEN: a contact of the owner
//	WHEN: SetLibrarySharing is received
//	THEN: LibrarySharingChanged is generated
//	IDEMPOTENT: if sharing is already in the requested state (no event generated)
//	ERROR: "contact not found" if the contact does not belong to the owner
//	ERROR: "contact is not linked to a member" (validation)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := errors.Join(
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "contact id", command.ContactID),
	); err != nil {
		return core.ErrorDecision(err)
	}

	contact, ok := core.ProjectContactBook(history).ByID(command.OwnerID, command.ContactID.String())
	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonContactNotFound))
	}

	if !contact.IsLinked() {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonContactNotLinked))
	}

	if contact.LibraryShared == command.Shared {
		return core.IdempotentDecision().WithEntityID(contact.ContactID)
	}

	return core.SuccessDecision(
		core.BuildLibrarySharingChanged(
			contact.ContactID,
			command.OwnerID,
			contact.LinkedUserID,
			command.Shared,
			command.OccurredAt,
		),
	).WithEntityID(contact.ContactID)
}

// BuildEventFilter is the owner's address book.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return core.OwnerContactsScope(ownerID)
}

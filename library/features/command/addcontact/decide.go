package addcontact

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNameRequired  = "contact name is required"
	failureReasonAlreadyExists = "contact already exists"
)

// Decide implements the business logic to add a contact.
//
// Business Rules:
//
//	GIVEN: the owner's address book
//	WHEN: AddContact is received
//	THEN: ContactAdded is generated with the whitespace-collapsed name
//	ERROR: "contact name is required" (validation)
//	ERROR: "contact already exists" if a contact with the same normalized name exists (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := errors.Join(
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "contact id", command.ContactID),
	); err != nil {
		return core.ErrorDecision(err)
	}

	fields := command.Fields
	fields.Name = strings.Join(strings.Fields(fields.Name), " ")
	fields.Email = strings.TrimSpace(fields.Email)
	fields.Phone = strings.TrimSpace(fields.Phone)

	if fields.Name == "" {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonNameRequired))
	}

	contacts := core.ProjectContactBook(history)

	if _, exists := contacts.ByNormalizedName(command.OwnerID, fields.Name); exists {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyExists))
	}

	return core.SuccessDecision(
		core.BuildContactAdded(command.ContactID, command.OwnerID, fields, "", command.OccurredAt),
	).WithEntityID(command.ContactID.String())
}

// BuildEventFilter is the owner's address book.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return core.OwnerContactsScope(ownerID)
}

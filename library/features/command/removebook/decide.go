package removebook

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonBookNotFound = "book not found"
)

// Decide implements the business logic to remove a book.
//
//	GIVEN: a book of the owner
//	WHEN: RemoveBook is received
//	THEN: BookRemoved is generated, custody records of the book go with it
//	ERROR: "book not found"
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	book, ok := core.ProjectLibrary(history).OwnedBook(command.OwnerID, command.BookID.String())
	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonBookNotFound))
	}

	return core.SuccessDecision(
		core.BuildBookRemoved(book.BookID, command.OwnerID, command.OccurredAt),
	).WithEntityID(book.BookID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "book id", command.BookID),
	)
}

// BuildEventFilter is the book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return core.BookScope(bookID)
}

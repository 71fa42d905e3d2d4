package setbooklendability

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonBookNotFound = "book not found"
)

// Decide implements the business logic to change a book's lendability.
// Pending and accepted requests are unaffected, the flag only gates new requests.
//
//	GIVEN: a book of the owner
//	WHEN: SetBookLendability is received
//	THEN: BookLendabilityChanged is generated
//	IDEMPOTENT: if the flag already has the requested value
//	ERROR: "book not found"
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	book, ok := core.ProjectLibrary(history).OwnedBook(command.OwnerID, command.BookID.String())
	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonBookNotFound))
	}

	if book.IsLendable == command.IsLendable {
		return core.IdempotentDecision().WithEntityID(book.BookID)
	}

	return core.SuccessDecision(
		core.BuildBookLendabilityChanged(book.BookID, command.OwnerID, command.IsLendable, command.OccurredAt),
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

package returnborrowedbook

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound          = "borrowed book not found"
	failureReasonAlreadyReturned   = "borrowed book is already returned"
	failureReasonReturnBeforeStart = "return date is before borrow date"
)

// Decide implements the business logic to return a borrowed book.
//
// Business Rules:
//
//	GIVEN: the book holding the record
//	WHEN: ReturnBorrowedBook is received from the owner
//	THEN: BorrowedBookReturned is generated, the record is RETURNED
//	ERROR: "borrowed book not found" unless the record is the owner's and its book still exists
//	ERROR: "borrowed book is already returned" (conflict)
//	ERROR: "return date is before borrow date" (validation)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	_, record, ok := core.ProjectLibrary(history).BookWithBorrow(command.BorrowID.String())
	if !ok || record.OwnerID != command.OwnerID {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonNotFound))
	}

	if !record.IsActive() {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyReturned))
	}

	returnDate := core.TimeOrDefault(command.ReturnDate, command.OccurredAt)
	if returnDate.Before(record.BorrowedAt) {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonReturnBeforeStart))
	}

	return core.SuccessDecision(
		core.BuildBorrowedBookReturned(record, returnDate, command.OccurredAt),
	).WithEntityID(record.BorrowID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "borrow id", command.BorrowID),
	)
}

// BuildEventFilter is the book holding the record.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return core.BookScope(bookID)
}

package returnloan

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound          = "loan not found"
	failureReasonAlreadyReturned   = "loan is already returned"
	failureReasonReturnBeforeStart = "return date is before loan date"
)

// Decide implements the business logic to return a loan.
//
// Business Rules:
//
//	GIVEN: the book holding the record
//	WHEN: ReturnLoan is received from the owner
//	THEN: LoanReturned is generated, the record is RETURNED
//	ERROR: "loan not found" unless the record is the owner's and its book still exists
//	ERROR: "loan is already returned" (conflict)
//	ERROR: "return date is before loan date" (validation)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	_, record, ok := core.ProjectLibrary(history).BookWithLoan(command.LoanID.String())
	if !ok || record.OwnerID != command.OwnerID {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonNotFound))
	}

	if !record.IsActive() {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyReturned))
	}

	returnDate := core.TimeOrDefault(command.ReturnDate, command.OccurredAt)
	if returnDate.Before(record.LoanDate) {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonReturnBeforeStart))
	}

	return core.SuccessDecision(
		core.BuildLoanReturned(record, returnDate, command.OccurredAt),
	).WithEntityID(record.LoanID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "loan id", command.LoanID),
	)
}

// BuildEventFilter is the book holding the record.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return core.BookScope(bookID)
}

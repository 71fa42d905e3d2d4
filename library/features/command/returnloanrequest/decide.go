package returnloanrequest

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound          = "loan request not found"
	failureReasonNotLender         = "only the lender can mark a loan request as returned"
	failureReasonNotAccepted       = "loan request is not accepted"
	failureReasonReturnBeforeStart = "return date is before acceptance"
)

// Decide implements the business logic to return a loan request.
//
// Business Rules:
//
//	GIVEN: the book holding the request
//	WHEN: ReturnLoanRequest is received
//	THEN: LoanRequestReturned is generated, the request is RETURNED
//	ERROR: "loan request not found" unless the actor is the lender or the requester
//	ERROR: the actor is not the lender (forbidden)
//	ERROR: the request is not ACCEPTED (conflict)
//	ERROR: "return date is before acceptance" (validation)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	requestID := command.RequestID.String()

	book, request, ok := core.ProjectLibrary(history).BookWithRequest(requestID)
	if ok {
		request, ok = book.RequestInvolving(requestID, command.LenderID)
	}

	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonNotFound))
	}

	if request.LenderID != command.LenderID {
		return core.ErrorDecision(core.Forbidden(commandType, failureReasonNotLender))
	}

	if request.Status != core.RequestAccepted {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonNotAccepted))
	}

	returnDate := core.TimeOrDefault(command.ReturnDate, command.OccurredAt)
	if request.RespondedAt != nil && returnDate.Before(*request.RespondedAt) {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonReturnBeforeStart))
	}

	return core.SuccessDecision(
		core.BuildLoanRequestReturned(request, returnDate, command.OccurredAt),
	).WithEntityID(request.RequestID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "request id", command.RequestID),
		core.RequireID(commandType, "lender id", command.LenderID),
	)
}

// BuildEventFilter is the book holding the request.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return core.BookScope(bookID)
}

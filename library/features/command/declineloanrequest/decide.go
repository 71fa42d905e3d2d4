package declineloanrequest

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound   = "loan request not found"
	failureReasonNotLender  = "only the lender can decline a loan request"
	failureReasonNotPending = "loan request is not pending"
)

// Decide implements the business logic to decline a loan request.
//
// Business Rules:
//
//	GIVEN: the book holding the request
//	WHEN: DeclineLoanRequest is received
//	THEN: LoanRequestDeclined is generated, the request is DECLINED
//	ERROR: "loan request not found" unless the actor is the lender or the requester
//	ERROR: the actor is not the lender (forbidden)
//	ERROR: the request is not PENDING (conflict)
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

	if request.Status != core.RequestPending {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonNotPending))
	}

	return core.SuccessDecision(
		core.BuildLoanRequestDeclined(request, strings.TrimSpace(command.ResponseMessage), command.OccurredAt),
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

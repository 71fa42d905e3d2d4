package cancelloanrequest

import (
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound     = "loan request not found"
	failureReasonNotRequester = "only the requester can cancel a loan request"
	failureReasonNotPending   = "loan request is not pending"
)

// Decide implements the business logic to cancel a loan request.
//
// Business Rules:
//
//	GIVEN: the book holding the request
//	WHEN: CancelLoanRequest is received
//	THEN: LoanRequestCancelled is generated, the request is CANCELLED
//	ERROR: "loan request not found" unless the actor is the lender or the requester
//	ERROR: the actor is not the requester (forbidden)
//	ERROR: the request is not PENDING (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	requestID := command.RequestID.String()

	book, request, ok := core.ProjectLibrary(history).BookWithRequest(requestID)
	if ok {
		request, ok = book.RequestInvolving(requestID, command.RequesterID)
	}

	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonNotFound))
	}

	if request.RequesterID != command.RequesterID {
		return core.ErrorDecision(core.Forbidden(commandType, failureReasonNotRequester))
	}

	if request.Status != core.RequestPending {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonNotPending))
	}

	return core.SuccessDecision(
		core.BuildLoanRequestCancelled(request, command.OccurredAt),
	).WithEntityID(request.RequestID)
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "request id", command.RequestID),
		core.RequireID(commandType, "requester id", command.RequesterID),
	)
}

// BuildEventFilter is the book holding the request.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return core.BookScope(bookID)
}

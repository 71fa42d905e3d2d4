package acceptloanrequest

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonNotFound        = "loan request not found"
	failureReasonNotLender       = "only the lender can accept a loan request"
	failureReasonNotPending      = "loan request is not pending"
	failureReasonLoanedToContact = "book is currently loaned out"
	failureReasonLentToMember    = "book is already lent to another member"
	failureReasonBorrowed        = "book is currently borrowed"
	failureReasonBorrowHistory   = "book has borrow history"
)

// Decide implements the business logic to accept a loan request.
//
// Business Rules:
//
//	GIVEN: the book holding the request
//	WHEN: AcceptLoanRequest is received
//	THEN: LoanRequestAccepted is generated, the request is ACCEPTED
//	ERROR: "loan request not found" unless the actor is the lender or the requester
//	ERROR: the actor is not the lender (forbidden)
//	ERROR: "loan request is not pending" (conflict)
//	ERROR: the book has an active loan, another accepted request or an active borrow (conflict)
//	ERROR: "book has borrow history" for a returned borrowed book, which is no longer the lender's (conflict)
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

	if err := checkCustody(book); err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(
		core.BuildLoanRequestAccepted(
			request,
			command.DueDate,
			strings.TrimSpace(command.ResponseMessage),
			command.OccurredAt,
		),
	).WithEntityID(request.RequestID)
}

func checkCustody(book core.Book) error {
	if _, ok := book.ActiveLoan(); ok {
		return core.Conflict(commandType, failureReasonLoanedToContact)
	}

	if _, ok := book.AcceptedRequest(); ok {
		return core.Conflict(commandType, failureReasonLentToMember)
	}

	if _, ok := book.ActiveBorrow(); ok {
		return core.Conflict(commandType, failureReasonBorrowed)
	}

	if book.HasBorrowHistory() {
		return core.Conflict(commandType, failureReasonBorrowHistory)
	}

	return nil
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

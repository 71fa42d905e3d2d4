package requestloan

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonBookNotFound   = "book not found"
	failureReasonOwnBook        = "cannot request your own book"
	failureReasonNotShared      = "library is not shared with you"
	failureReasonNotLendable    = "book is not lendable"
	failureReasonAlreadyPending = "you already have a pending request for this book"
	failureReasonUnavailable    = "book is not available"
)

// Decide implements the business logic to request a loan.
//
// Business Rules (checked in this order):
//
//	GIVEN: the book with its custody ledgers and the owner's address book
//	WHEN: RequestLoan is received
//	THEN: LoanRequested is generated, the request is PENDING
//	ERROR: "book not found", also for a borrowed book given back to its source
//	ERROR: "cannot request your own book" (validation)
//	ERROR: "library is not shared with you" without a sharing contact of the owner (forbidden)
//	ERROR: "book is not lendable" (conflict)
//	ERROR: a PENDING request of the requester for the book exists (conflict)
//	ERROR: "book is not available" with an active loan, an accepted request or an active borrow (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	book, ok := core.ProjectLibrary(history).Book(command.BookID.String())
	if !ok || !core.IsVisibleInOwnerCollection(book) {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonBookNotFound))
	}

	if book.OwnerID == command.RequesterID {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonOwnBook))
	}

	if !core.ProjectContactBook(history).SharingWith(book.OwnerID, command.RequesterID) {
		return core.ErrorDecision(core.Forbidden(commandType, failureReasonNotShared))
	}

	if !book.IsLendable {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonNotLendable))
	}

	if _, pending := book.PendingRequestBy(command.RequesterID); pending {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyPending))
	}

	if core.ResolveAvailability(book, command.OccurredAt).Status != core.AvailabilityInPossession {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonUnavailable))
	}

	return core.SuccessDecision(
		core.BuildLoanRequested(
			command.RequestID,
			book.BookID,
			book.OwnerID,
			command.RequesterID,
			strings.TrimSpace(command.Message),
			command.DueDate,
			command.OccurredAt,
		),
	).WithEntityID(command.RequestID.String())
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "request id", command.RequestID),
		core.RequireID(commandType, "requester id", command.RequesterID),
		core.RequireUUID(commandType, "book id", command.BookID),
	)
}

// BuildEventFilter is the book plus its owner's address book, which carries the sharing flag.
// An unknown owner narrows it to the book alone.
func BuildEventFilter(bookID core.BookIDString, ownerID core.UserIDString) eventstore.Filter {
	if ownerID == "" {
		return core.BookScope(bookID)
	}

	return eventstore.Union(core.BookScope(bookID), core.OwnerContactsScope(ownerID))
}

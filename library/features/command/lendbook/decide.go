package lendbook

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonBookNotFound      = "book not found"
	failureReasonLentToMember      = "book is lent to a member through an accepted request"
	failureReasonAlreadyLoanedTo   = "book is already loaned to "
	failureReasonCurrentlyBorrowed = "book is currently borrowed"
	failureReasonBorrowHistory     = "book has borrow history"
	failureReasonDueBeforeLoanDate = "due date is before loan date"
)

// Decide implements the business logic to lend a book to a contact.
//
// Business Rules (checked in this order):
//
//	GIVEN: the book with its custody ledgers and the owner's address book
//	WHEN: LendBook is received
//	THEN: an optional ContactAdded, then BookLentToContact (the loan is ACTIVE)
//	ERROR: the contact reference cannot be resolved (validation, not found)
//	ERROR: "book not found" unless the owner owns the book
//	ERROR: an ACCEPTED loan request exists (conflict)
//	ERROR: "book is already loaned to <name>" (conflict)
//	ERROR: "book is currently borrowed" (conflict)
//	ERROR: "book has borrow history" (conflict)
//	ERROR: "due date is before loan date" (validation)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	contacts := core.ProjectContactBook(history)

	contact, contactAdded, err := core.ResolveContact(
		commandType,
		contacts,
		command.OwnerID,
		command.Contact,
		command.NewContactID,
		command.OccurredAt,
	)
	if err != nil {
		return core.ErrorDecision(err)
	}

	book, ok := core.ProjectLibrary(history).OwnedBook(command.OwnerID, command.BookID.String())
	if !ok {
		return core.ErrorDecision(core.NotFound(commandType, failureReasonBookNotFound))
	}

	if err = checkCustody(book, contacts); err != nil {
		return core.ErrorDecision(err)
	}

	loanDate := core.TimeOrDefault(command.LoanDate, command.OccurredAt)
	if command.DueDate != nil && command.DueDate.Before(loanDate) {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonDueBeforeLoanDate))
	}

	lent := core.BuildBookLentToContact(
		command.LoanID,
		book.BookID,
		command.OwnerID,
		contact.ContactID,
		loanDate,
		command.DueDate,
		strings.TrimSpace(command.Notes),
		command.OccurredAt,
	)

	if contactAdded != nil {
		return core.SuccessDecision(*contactAdded, lent).WithEntityID(command.LoanID.String())
	}

	return core.SuccessDecision(lent).WithEntityID(command.LoanID.String())
}

func checkCustody(book core.Book, contacts core.ContactBook) error {
	if _, ok := book.AcceptedRequest(); ok {
		return core.Conflict(commandType, failureReasonLentToMember)
	}

	if loan, ok := book.ActiveLoan(); ok {
		return core.Conflict(commandType, failureReasonAlreadyLoanedTo+contacts.NameOf(loan.ContactID))
	}

	if _, ok := book.ActiveBorrow(); ok {
		return core.Conflict(commandType, failureReasonCurrentlyBorrowed)
	}

	if book.HasBorrowHistory() {
		return core.Conflict(commandType, failureReasonBorrowHistory)
	}

	return nil
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "loan id", command.LoanID),
		core.RequireID(commandType, "owner id", command.OwnerID),
		core.RequireUUID(commandType, "book id", command.BookID),
	)
}

// BuildEventFilter is the book with its custody ledgers plus the owner's address book.
func BuildEventFilter(ownerID core.UserIDString, bookID core.BookIDString) eventstore.Filter {
	return eventstore.Union(core.BookScope(bookID), core.OwnerContactsScope(ownerID))
}

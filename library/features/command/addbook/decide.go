package addbook

import (
	"errors"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	failureReasonTitleRequired        = "title is required"
	failureReasonAlreadyExists        = "book already exists"
	failureReasonSourceRequired       = "borrow source is required"
	failureReasonSourceNotFound       = "borrow source not found"
	failureReasonCurrentlyBorrowed    = "book is currently borrowed"
	failureReasonCurrentlyLoaned      = "book is currently loaned out"
	failureReasonLentToMember         = "book is lent to a member"
	failureReasonExpectedBeforeBorrow = "expected return date is before borrow date"
)

// Decide implements the business logic to add (or re-enter) a book.
//
// Business Rules:
//
//	GIVEN: the owner's books with their custody ledgers and the owner's address book
//	WHEN: AddBook is received
//	THEN: BookAdded for a new book, then depending on IsBorrowed:
//	  - nil: nothing more, re-entering a known book is idempotent
//	  - true: an optional ContactAdded for the source, then BookBorrowedFromContact
//	  - false: BorrowHistoryCleared for a re-entered book
//	ERROR: "title is required" (validation)
//	ERROR: "book already exists" if the same title (case-insensitive) and ISBN exist without borrow history
//	ERROR: "borrow source is required", "borrow source not found" (validation)
//	ERROR: the re-entered book has an active borrow, an active loan or an accepted request (conflict)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	fields := normalized(command.Fields)
	if fields.Title == "" {
		return core.ErrorDecision(core.Invalid(commandType, failureReasonTitleRequired))
	}

	existing, found := findDuplicate(core.ProjectLibrary(history), command.OwnerID, fields)
	if found && !existing.HasBorrowHistory() {
		return core.ErrorDecision(core.Conflict(commandType, failureReasonAlreadyExists))
	}

	bookID := command.BookID.String()
	events := core.DomainEvents{}

	if found {
		bookID = existing.BookID
	} else {
		events = append(events, core.BuildBookAdded(command.BookID, command.OwnerID, fields, command.OccurredAt))
	}

	switch {
	case command.IsBorrowed == nil:
		if found {
			return core.IdempotentDecision().WithEntityID(bookID)
		}

	case !*command.IsBorrowed:
		if found {
			events = append(events, core.BuildBorrowHistoryCleared(bookID, command.OwnerID, command.OccurredAt))
		}

	default:
		borrowEvents, err := decideBorrow(history, command, bookID, existing, found)
		if err != nil {
			return core.ErrorDecision(err)
		}

		events = append(events, borrowEvents...)
	}

	return core.SuccessDecision(events[0], events[1:]...).WithEntityID(bookID)
}

func decideBorrow(
	history core.DomainEvents,
	command Command,
	bookID core.BookIDString,
	existing core.Book,
	found bool,
) (core.DomainEvents, error) {

	if command.BorrowSource == nil {
		return nil, core.Invalid(commandType, failureReasonSourceRequired)
	}

	if err := core.RequireUUID(commandType, "borrow id", command.BorrowID); err != nil {
		return nil, err
	}

	source, contactAdded, err := core.ResolveContact(
		commandType,
		core.ProjectContactBook(history),
		command.OwnerID,
		command.BorrowSource,
		command.NewContactID,
		command.OccurredAt,
	)

	if errors.Is(err, core.ErrNotFound) {
		return nil, core.Invalid(commandType, failureReasonSourceNotFound)
	}

	if err != nil {
		return nil, err
	}

	if found {
		if err = checkCustody(existing); err != nil {
			return nil, err
		}
	}

	borrowedAt := core.TimeOrDefault(command.BorrowedAt, command.OccurredAt)
	if command.ExpectedReturnDate != nil && command.ExpectedReturnDate.Before(borrowedAt) {
		return nil, core.Invalid(commandType, failureReasonExpectedBeforeBorrow)
	}

	events := core.DomainEvents{}
	if contactAdded != nil {
		events = append(events, *contactAdded)
	}

	return append(events, core.BuildBookBorrowedFromContact(
		command.BorrowID,
		bookID,
		command.OwnerID,
		source,
		borrowedAt,
		command.ExpectedReturnDate,
		strings.TrimSpace(command.Notes),
		command.OccurredAt,
	)), nil
}

func checkCustody(book core.Book) error {
	if _, ok := book.ActiveBorrow(); ok {
		return core.Conflict(commandType, failureReasonCurrentlyBorrowed)
	}

	if _, ok := book.ActiveLoan(); ok {
		return core.Conflict(commandType, failureReasonCurrentlyLoaned)
	}

	if _, ok := book.AcceptedRequest(); ok {
		return core.Conflict(commandType, failureReasonLentToMember)
	}

	return nil
}

func findDuplicate(library core.Library, ownerID core.UserIDString, fields core.BookFields) (core.Book, bool) {
	for _, b := range library.BooksOwnedBy(ownerID) {
		if strings.EqualFold(b.Title, fields.Title) && b.ISBN == fields.ISBN {
			return b, true
		}
	}

	return core.Book{}, false
}

func normalized(fields core.BookFields) core.BookFields {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.ISBN = strings.TrimSpace(fields.ISBN)
	fields.Barcode = strings.TrimSpace(fields.Barcode)
	fields.Author = strings.TrimSpace(fields.Author)
	fields.Publisher = strings.TrimSpace(fields.Publisher)

	return fields
}

func validate(command Command) error {
	return errors.Join(
		core.RequireUUID(commandType, "book id", command.BookID),
		core.RequireID(commandType, "owner id", command.OwnerID),
	)
}

// BuildEventFilter is the owner's whole library: duplicate detection spans all their books.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return core.OwnerLibraryScope(ownerID)
}

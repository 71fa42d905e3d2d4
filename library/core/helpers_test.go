package core_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

var testNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newID() string {
	return uuid.NewString()
}

func givenBookAdded(bookID core.BookIDString, ownerID core.UserIDString, lendable bool, at time.Time) core.BookAdded {
	return core.BuildBookAdded(uuid.MustParse(bookID), ownerID, core.BookFields{Title: "Dune", ISBN: "9780441013593", IsLendable: lendable}, at)
}

func givenContactAdded(contactID core.ContactIDString, ownerID core.UserIDString, name string, at time.Time) core.ContactAdded {
	return core.BuildContactAdded(uuid.MustParse(contactID), ownerID, core.ContactFields{Name: name}, "", at)
}

func givenBookLent(loanID core.LoanIDString, bookID core.BookIDString, ownerID core.UserIDString, contactID core.ContactIDString, dueDate *time.Time, at time.Time) core.BookLentToContact {
	return core.BuildBookLentToContact(uuid.MustParse(loanID), bookID, ownerID, contactID, at, dueDate, "", at)
}

func givenBookBorrowed(borrowID core.BorrowIDString, bookID core.BookIDString, ownerID core.UserIDString, at time.Time) core.BookBorrowedFromContact {
	return core.BuildBookBorrowedFromContact(uuid.MustParse(borrowID), bookID, ownerID, core.ResolvedContact{Name: "City Library"}, at, nil, "", at)
}

func givenBorrowReturned(borrowID core.BorrowIDString, bookID core.BookIDString, ownerID core.UserIDString, at time.Time) core.BorrowedBookReturned {
	return core.BuildBorrowedBookReturned(core.BorrowRecord{BorrowID: borrowID, BookID: bookID, OwnerID: ownerID}, at, at)
}

func givenLoanRequested(requestID core.RequestIDString, bookID core.BookIDString, lenderID, requesterID core.UserIDString, at time.Time) core.LoanRequested {
	return core.BuildLoanRequested(uuid.MustParse(requestID), bookID, lenderID, requesterID, "please", nil, at)
}

func givenLoanRequestAccepted(requested core.LoanRequested, dueDate *time.Time, at time.Time) core.LoanRequestAccepted {
	return core.BuildLoanRequestAccepted(core.RequestRecord{
		RequestID:   requested.RequestID,
		BookID:      requested.BookID,
		LenderID:    requested.LenderID,
		RequesterID: requested.RequesterID,
	}, dueDate, "sure", at)
}

func projectBook(bookID core.BookIDString, events ...core.DomainEvent) (core.Book, bool) {
	return core.ProjectLibrary(events).Book(bookID)
}

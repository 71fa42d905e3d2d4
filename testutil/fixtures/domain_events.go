package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	FixtureTitle = "The Left Hand of Darkness"
	FixtureISBN  = "9780441478125"
)

func FixtureMemberRegistered(userID core.UserIDString, username string, at time.Time) core.MemberRegistered {
	return core.BuildMemberRegistered(userID, username, username+"@example.org", at)
}

func FixtureBookAdded(bookID core.BookIDString, ownerID core.UserIDString, lendable bool, at time.Time) core.BookAdded {
	return core.BuildBookAdded(uuid.MustParse(bookID), ownerID, core.BookFields{
		Title:         FixtureTitle,
		ISBN:          FixtureISBN,
		Barcode:       "BC-0001",
		Author:        "Ursula K. Le Guin",
		Publisher:     "Ace",
		IsLendable:    lendable,
		Rating:        5,
		PersonalNotes: "signed copy",
		ReadStatus:    "read",
	}, at)
}

func FixtureBookRemoved(bookID core.BookIDString, ownerID core.UserIDString, at time.Time) core.BookRemoved {
	return core.BuildBookRemoved(bookID, ownerID, at)
}

func FixtureContactAdded(contactID core.ContactIDString, ownerID core.UserIDString, name string, at time.Time) core.ContactAdded {
	return core.BuildContactAdded(uuid.MustParse(contactID), ownerID, core.ContactFields{Name: name}, "", at)
}

// FixtureLinkedContact is ownerID's contact for linkedUserID, optionally sharing ownerID's library with them.
func FixtureLinkedContact(
	contactID core.ContactIDString,
	ownerID core.UserIDString,
	linkedUserID core.UserIDString,
	name string,
	shared bool,
	at time.Time,
) core.DomainEvents {

	events := core.DomainEvents{
		core.BuildContactAdded(uuid.MustParse(contactID), ownerID, core.ContactFields{Name: name}, linkedUserID, at),
	}

	if shared {
		events = append(events, core.BuildLibrarySharingChanged(contactID, ownerID, linkedUserID, true, at))
	}

	return events
}

func FixtureBookLent(
	loanID core.LoanIDString,
	bookID core.BookIDString,
	ownerID core.UserIDString,
	contactID core.ContactIDString,
	dueDate *time.Time,
	at time.Time,
) core.BookLentToContact {

	return core.BuildBookLentToContact(uuid.MustParse(loanID), bookID, ownerID, contactID, at, dueDate, "", at)
}

func FixtureLoanReturned(loan core.BookLentToContact, at time.Time) core.LoanReturned {
	return core.BuildLoanReturned(core.LoanRecord{LoanID: loan.LoanID, BookID: loan.BookID, OwnerID: loan.OwnerID}, at, at)
}

func FixtureBookBorrowed(
	borrowID core.BorrowIDString,
	bookID core.BookIDString,
	ownerID core.UserIDString,
	contactID core.ContactIDString,
	sourceName string,
	expectedReturnDate *time.Time,
	at time.Time,
) core.BookBorrowedFromContact {

	source := core.ResolvedContact{ContactID: contactID, Name: sourceName}

	return core.BuildBookBorrowedFromContact(uuid.MustParse(borrowID), bookID, ownerID, source, at, expectedReturnDate, "", at)
}

func FixtureBorrowReturned(borrow core.BookBorrowedFromContact, at time.Time) core.BorrowedBookReturned {
	return core.BuildBorrowedBookReturned(
		core.BorrowRecord{BorrowID: borrow.BorrowID, BookID: borrow.BookID, OwnerID: borrow.OwnerID},
		at,
		at,
	)
}

func FixtureLoanRequested(
	requestID core.RequestIDString,
	bookID core.BookIDString,
	lenderID core.UserIDString,
	requesterID core.UserIDString,
	at time.Time,
) core.LoanRequested {

	return core.BuildLoanRequested(uuid.MustParse(requestID), bookID, lenderID, requesterID, "may I borrow this?", nil, at)
}

func FixtureLoanRequestAccepted(requested core.LoanRequested, dueDate *time.Time, at time.Time) core.LoanRequestAccepted {
	return core.BuildLoanRequestAccepted(requestRecordOf(requested), dueDate, "enjoy", at)
}

func FixtureLoanRequestDeclined(requested core.LoanRequested, at time.Time) core.LoanRequestDeclined {
	return core.BuildLoanRequestDeclined(requestRecordOf(requested), "not now", at)
}

func FixtureLoanRequestCancelled(requested core.LoanRequested, at time.Time) core.LoanRequestCancelled {
	return core.BuildLoanRequestCancelled(requestRecordOf(requested), at)
}

func FixtureLoanRequestReturned(requested core.LoanRequested, at time.Time) core.LoanRequestReturned {
	return core.BuildLoanRequestReturned(requestRecordOf(requested), at, at)
}

func FixtureInvitationSent(
	invitationID core.InvitationIDString,
	senderID core.UserIDString,
	recipientID core.UserIDString,
	at time.Time,
) core.InvitationSent {

	return core.BuildInvitationSent(uuid.MustParse(invitationID), senderID, recipientID, "let's share books", at)
}

func FixtureInvitationAccepted(sent core.InvitationSent, at time.Time) core.InvitationAccepted {
	return core.BuildInvitationAccepted(invitationOf(sent), at)
}

func FixtureInvitationDeclined(sent core.InvitationSent, at time.Time) core.InvitationDeclined {
	return core.BuildInvitationDeclined(invitationOf(sent), at)
}

func FixtureInvitationCancelled(sent core.InvitationSent, at time.Time) core.InvitationCancelled {
	return core.BuildInvitationCancelled(invitationOf(sent), at)
}

func requestRecordOf(requested core.LoanRequested) core.RequestRecord {
	return core.RequestRecord{
		RequestID:   requested.RequestID,
		BookID:      requested.BookID,
		LenderID:    requested.LenderID,
		RequesterID: requested.RequesterID,
	}
}

func invitationOf(sent core.InvitationSent) core.Invitation {
	return core.Invitation{InvitationID: sent.InvitationID, SenderID: sent.SenderID, RecipientID: sent.RecipientID}
}

package app

import (
	"context"
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/acceptinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/acceptloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/addbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/addcontact"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/cancelinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/cancelloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/declineinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/declineloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/lendbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/registermember"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/removebook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/requestloan"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnborrowedbook"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnloan"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnloanrequest"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/sendinvitation"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/setbooklendability"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/setlibrarysharing"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

/***** Social graph *****/

// RegisterMember makes userID known under a unique username.
func (a *App) RegisterMember(ctx context.Context, userID core.UserIDString, username string, email string) (shell.HandlerResult, error) {
	return a.registerMember.Handle(ctx, registermember.BuildCommand(userID, username, email, a.clock()))
}

// AddContact adds a plain contact to the owner's address book. EntityID is the new contact id.
func (a *App) AddContact(ctx context.Context, ownerID core.UserIDString, fields core.ContactFields) (shell.HandlerResult, error) {
	return a.addContact.Handle(ctx, addcontact.BuildCommand(a.newID(), ownerID, fields, a.clock()))
}

// SetLibrarySharing turns library visibility for a linked contact on or off.
func (a *App) SetLibrarySharing(
	ctx context.Context,
	ownerID core.UserIDString,
	contactID core.ContactIDString,
	shared bool,
) (shell.HandlerResult, error) {

	id, err := parseID[setlibrarysharing.Command]("contact id", contactID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.setSharing.Handle(ctx, setlibrarysharing.BuildCommand(ownerID, id, shared, a.clock()))
}

// SendInvitation invites recipientID to connect. EntityID is the invitation id.
func (a *App) SendInvitation(
	ctx context.Context,
	senderID core.UserIDString,
	recipientID core.UserIDString,
	message string,
) (shell.HandlerResult, error) {

	return a.sendInvitation.Handle(ctx, sendinvitation.BuildCommand(a.newID(), senderID, recipientID, message, a.clock()))
}

// AcceptInvitation links both members as contacts of each other.
func (a *App) AcceptInvitation(
	ctx context.Context,
	invitationID core.InvitationIDString,
	actorID core.UserIDString,
) (shell.HandlerResult, error) {

	id, err := parseID[acceptinvitation.Command]("invitation id", invitationID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.acceptInvitation.Handle(ctx, acceptinvitation.BuildCommand(id, actorID, a.newID(), a.newID(), a.clock()))
}

// DeclineInvitation is done by the recipient.
func (a *App) DeclineInvitation(
	ctx context.Context,
	invitationID core.InvitationIDString,
	actorID core.UserIDString,
) (shell.HandlerResult, error) {

	id, err := parseID[declineinvitation.Command]("invitation id", invitationID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.declineInvitation.Handle(ctx, declineinvitation.BuildCommand(id, actorID, a.clock()))
}

// CancelInvitation is done by the sender.
func (a *App) CancelInvitation(
	ctx context.Context,
	invitationID core.InvitationIDString,
	actorID core.UserIDString,
) (shell.HandlerResult, error) {

	id, err := parseID[cancelinvitation.Command]("invitation id", invitationID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.cancelInvitation.Handle(ctx, cancelinvitation.BuildCommand(id, actorID, a.clock()))
}

/***** Books *****/

// AddBook adds a book or updates the one with the same ISBN or barcode. Custody is left untouched.
// EntityID is the book id.
func (a *App) AddBook(ctx context.Context, ownerID core.UserIDString, fields core.BookFields) (shell.HandlerResult, error) {
	return a.addBook.Handle(ctx, addbook.BuildCommand(a.newID(), ownerID, fields, a.clock()))
}

// AddOwnedBook does what AddBook does and marks the book as owned, which clears a previous borrow history.
func (a *App) AddOwnedBook(ctx context.Context, ownerID core.UserIDString, fields core.BookFields) (shell.HandlerResult, error) {
	return a.addBook.Handle(ctx, addbook.BuildCommand(a.newID(), ownerID, fields, a.clock()).AsOwned())
}

// AddBorrowedBook adds or re-enters a book and records it as borrowed from source.
func (a *App) AddBorrowedBook(
	ctx context.Context,
	ownerID core.UserIDString,
	fields core.BookFields,
	source core.ContactRef,
	borrowedAt *time.Time,
	expectedReturnDate *time.Time,
	notes string,
) (shell.HandlerResult, error) {

	command := addbook.BuildCommand(a.newID(), ownerID, fields, a.clock()).
		AsBorrowed(a.newID(), source, a.newID(), borrowedAt, expectedReturnDate, notes)

	return a.addBook.Handle(ctx, command)
}

// SetBookLendable toggles whether members may request the book.
func (a *App) SetBookLendable(
	ctx context.Context,
	ownerID core.UserIDString,
	bookID core.BookIDString,
	lendable bool,
) (shell.HandlerResult, error) {

	id, err := parseID[setbooklendability.Command]("book id", bookID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.setBookLendable.Handle(ctx, setbooklendability.BuildCommand(ownerID, id, lendable, a.clock()))
}

// RemoveBook deletes the book together with its custody records.
func (a *App) RemoveBook(ctx context.Context, ownerID core.UserIDString, bookID core.BookIDString) (shell.HandlerResult, error) {
	id, err := parseID[removebook.Command]("book id", bookID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.removeBook.Handle(ctx, removebook.BuildCommand(ownerID, id, a.clock()))
}

/***** Custody *****/

// LendBook hands the owner's book to a contact. EntityID is the loan id.
func (a *App) LendBook(
	ctx context.Context,
	ownerID core.UserIDString,
	bookID core.BookIDString,
	contact core.ContactRef,
	loanDate *time.Time,
	dueDate *time.Time,
	notes string,
) (shell.HandlerResult, error) {

	id, err := parseID[lendbook.Command]("book id", bookID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	command := lendbook.BuildCommand(a.newID(), ownerID, id, contact, a.newID(), loanDate, dueDate, notes, a.clock())

	return a.lendBook.Handle(ctx, command)
}

// ReturnLoan closes a loan to a contact. A nil returnDate means now.
func (a *App) ReturnLoan(
	ctx context.Context,
	ownerID core.UserIDString,
	loanID core.LoanIDString,
	returnDate *time.Time,
) (shell.HandlerResult, error) {

	id, err := parseID[returnloan.Command]("loan id", loanID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.returnLoan.Handle(ctx, returnloan.BuildCommand(ownerID, id, returnDate, a.clock()))
}

// ReturnBorrowedBook closes a borrow. A nil returnDate means now.
func (a *App) ReturnBorrowedBook(
	ctx context.Context,
	ownerID core.UserIDString,
	borrowID core.BorrowIDString,
	returnDate *time.Time,
) (shell.HandlerResult, error) {

	id, err := parseID[returnborrowedbook.Command]("borrow id", borrowID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.returnBorrowedBook.Handle(ctx, returnborrowedbook.BuildCommand(ownerID, id, returnDate, a.clock()))
}

/***** Loan requests *****/

// RequestLoan asks the owner of bookID to lend it. EntityID is the request id.
func (a *App) RequestLoan(
	ctx context.Context,
	requesterID core.UserIDString,
	bookID core.BookIDString,
	message string,
	dueDate *time.Time,
) (shell.HandlerResult, error) {

	id, err := parseID[requestloan.Command]("book id", bookID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.requestLoan.Handle(ctx, requestloan.BuildCommand(a.newID(), requesterID, id, message, dueDate, a.clock()))
}

// AcceptLoanRequest puts the book in the requester's hands.
func (a *App) AcceptLoanRequest(
	ctx context.Context,
	requestID core.RequestIDString,
	lenderID core.UserIDString,
	dueDate *time.Time,
	responseMessage string,
) (shell.HandlerResult, error) {

	id, err := parseID[acceptloanrequest.Command]("request id", requestID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.acceptLoanRequest.Handle(ctx, acceptloanrequest.BuildCommand(id, lenderID, dueDate, responseMessage, a.clock()))
}

// DeclineLoanRequest is done by the lender.
func (a *App) DeclineLoanRequest(
	ctx context.Context,
	requestID core.RequestIDString,
	lenderID core.UserIDString,
	responseMessage string,
) (shell.HandlerResult, error) {

	id, err := parseID[declineloanrequest.Command]("request id", requestID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.declineLoanReq.Handle(ctx, declineloanrequest.BuildCommand(id, lenderID, responseMessage, a.clock()))
}

// CancelLoanRequest is done by the requester while the request is pending.
func (a *App) CancelLoanRequest(
	ctx context.Context,
	requestID core.RequestIDString,
	requesterID core.UserIDString,
) (shell.HandlerResult, error) {

	id, err := parseID[cancelloanrequest.Command]("request id", requestID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.cancelLoanReq.Handle(ctx, cancelloanrequest.BuildCommand(id, requesterID, a.clock()))
}

// ReturnLoanRequest records that the requester gave the book back. A nil returnDate means now.
func (a *App) ReturnLoanRequest(
	ctx context.Context,
	requestID core.RequestIDString,
	lenderID core.UserIDString,
	returnDate *time.Time,
) (shell.HandlerResult, error) {

	id, err := parseID[returnloanrequest.Command]("request id", requestID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return a.returnLoanReq.Handle(ctx, returnloanrequest.BuildCommand(id, lenderID, returnDate, a.clock()))
}

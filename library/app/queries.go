package app

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/bookavailability"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/borrowedbooks"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/contacts"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/invitations"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/loanrequests"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/loans"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/ownerlibrary"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/sharedlibrary"
)

// BookAvailability resolves where bookID is right now, as seen by viewerID.
func (a *App) BookAvailability(
	ctx context.Context,
	viewerID core.UserIDString,
	bookID core.BookIDString,
) (bookavailability.BookAvailability, error) {

	return a.bookAvailability.Handle(ctx, bookavailability.BuildQuery(viewerID, bookID, a.clock()))
}

// OwnerLibrary lists the owner's visible books, optionally narrowed by search.
func (a *App) OwnerLibrary(ctx context.Context, ownerID core.UserIDString, search string) (ownerlibrary.OwnerLibrary, error) {
	return a.ownerLibrary.Handle(ctx, ownerlibrary.BuildQuery(ownerID, search, a.clock()))
}

// SharedLibrary lists what ownerID shares with viewerID.
func (a *App) SharedLibrary(
	ctx context.Context,
	viewerID core.UserIDString,
	ownerID core.UserIDString,
) (sharedlibrary.SharedLibrary, error) {

	return a.sharedLibrary.Handle(ctx, sharedlibrary.BuildQuery(viewerID, ownerID, a.clock()))
}

// Loans lists the owner's loans to contacts. An empty status lists all.
func (a *App) Loans(ctx context.Context, ownerID core.UserIDString, status core.CustodyStatus) (loans.Loans, error) {
	return a.loans.Handle(ctx, loans.BuildQuery(ownerID, status, a.clock()))
}

// BorrowedBooks lists what the owner borrowed from contacts. An empty status lists all.
func (a *App) BorrowedBooks(
	ctx context.Context,
	ownerID core.UserIDString,
	status core.CustodyStatus,
) (borrowedbooks.BorrowedBooks, error) {

	return a.borrowedBooks.Handle(ctx, borrowedbooks.BuildQuery(ownerID, status, a.clock()))
}

// LoanRequests lists the requests userID received or made.
func (a *App) LoanRequests(
	ctx context.Context,
	userID core.UserIDString,
	direction loanrequests.Direction,
) (loanrequests.LoanRequests, error) {

	return a.loanRequests.Handle(ctx, loanrequests.BuildQuery(userID, direction))
}

// Invitations lists the invitations of userID in box.
func (a *App) Invitations(ctx context.Context, userID core.UserIDString, box invitations.Box) (invitations.Invitations, error) {
	return a.invitations.Handle(ctx, invitations.BuildQuery(userID, box))
}

// Contacts lists the owner's address book.
func (a *App) Contacts(ctx context.Context, ownerID core.UserIDString) (contacts.Contacts, error) {
	return a.contacts.Handle(ctx, contacts.BuildQuery(ownerID))
}

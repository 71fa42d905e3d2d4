package core

import (
	"slices"
	"time"
)

// LoanRecord is one Loan of a book to a contact.
type LoanRecord struct {
	LoanID     LoanIDString
	BookID     BookIDString
	OwnerID    UserIDString
	ContactID  ContactIDString
	LoanDate   time.Time
	DueDate    OptionalTS
	ReturnDate OptionalTS
	Notes      string
}

// IsActive reports whether the loan is not returned yet (ACTIVE or OVERDUE).
func (r LoanRecord) IsActive() bool {
	return r.ReturnDate == nil
}

// StatusAt derives the status of the loan at now.
func (r LoanRecord) StatusAt(now time.Time) CustodyStatus {
	return DeriveCustodyStatus(r.ReturnDate, r.DueDate, now)
}

// BorrowRecord is one BorrowedBook record of a book.
type BorrowRecord struct {
	BorrowID           BorrowIDString
	BookID             BookIDString
	OwnerID            UserIDString
	ContactID          ContactIDString
	SourceName         string
	BorrowedAt         time.Time
	ExpectedReturnDate OptionalTS
	ReturnDate         OptionalTS
	Notes              string
}

// IsActive reports whether the borrowed book has not gone back to its source yet.
func (r BorrowRecord) IsActive() bool {
	return r.ReturnDate == nil
}

// StatusAt derives the status of the borrow at now.
func (r BorrowRecord) StatusAt(now time.Time) CustodyStatus {
	return DeriveCustodyStatus(r.ReturnDate, r.ExpectedReturnDate, now)
}

// RequestRecord is one UserLoanRequest for a book.
type RequestRecord struct {
	RequestID       RequestIDString
	BookID          BookIDString
	LenderID        UserIDString
	RequesterID     UserIDString
	Status          RequestStatus
	Message         string
	ResponseMessage string
	DueDate         OptionalTS
	RequestedAt     time.Time
	RespondedAt     OptionalTS
	ReturnDate      OptionalTS
}

// Book is the projected state of a catalogued book including all its custody records.
type Book struct {
	BookID        BookIDString
	OwnerID       UserIDString
	Title         string
	ISBN          string
	Barcode       string
	Author        string
	Publisher     string
	IsLendable    bool
	Rating        int
	PersonalNotes string
	ReadStatus    string
	AddedAt       time.Time
	Loans         []LoanRecord
	Borrows       []BorrowRecord
	Requests      []RequestRecord
}

// ActiveLoan returns the loan that is not returned yet, if any.
func (b Book) ActiveLoan() (LoanRecord, bool) {
	idx := slices.IndexFunc(b.Loans, LoanRecord.IsActive)
	if idx < 0 {
		return LoanRecord{}, false
	}

	return b.Loans[idx], true
}

// ActiveBorrow returns the borrow record that is not returned yet, if any.
func (b Book) ActiveBorrow() (BorrowRecord, bool) {
	idx := slices.IndexFunc(b.Borrows, BorrowRecord.IsActive)
	if idx < 0 {
		return BorrowRecord{}, false
	}

	return b.Borrows[idx], true
}

// HasBorrowHistory reports whether any borrow record exists, returned or not.
func (b Book) HasBorrowHistory() bool {
	return len(b.Borrows) > 0
}

// AcceptedRequest returns the request in ACCEPTED state, if any.
func (b Book) AcceptedRequest() (RequestRecord, bool) {
	return b.requestWhere(func(r RequestRecord) bool { return r.Status == RequestAccepted })
}

// PendingRequestBy returns the PENDING request of requesterID, if any.
func (b Book) PendingRequestBy(requesterID UserIDString) (RequestRecord, bool) {
	return b.requestWhere(func(r RequestRecord) bool { return r.Status == RequestPending && r.RequesterID == requesterID })
}

// Request returns the request with requestID.
func (b Book) Request(requestID RequestIDString) (RequestRecord, bool) {
	return b.requestWhere(func(r RequestRecord) bool { return r.RequestID == requestID })
}

// RequestInvolving returns the request with requestID only if userID is its lender or requester.
func (b Book) RequestInvolving(requestID RequestIDString, userID UserIDString) (RequestRecord, bool) {
	r, ok := b.Request(requestID)
	if !ok || (r.LenderID != userID && r.RequesterID != userID) {
		return RequestRecord{}, false
	}

	return r, true
}

// Loan returns the loan with loanID.
func (b Book) Loan(loanID LoanIDString) (LoanRecord, bool) {
	idx := slices.IndexFunc(b.Loans, func(r LoanRecord) bool { return r.LoanID == loanID })
	if idx < 0 {
		return LoanRecord{}, false
	}

	return b.Loans[idx], true
}

// Borrow returns the borrow record with borrowID.
func (b Book) Borrow(borrowID BorrowIDString) (BorrowRecord, bool) {
	idx := slices.IndexFunc(b.Borrows, func(r BorrowRecord) bool { return r.BorrowID == borrowID })
	if idx < 0 {
		return BorrowRecord{}, false
	}

	return b.Borrows[idx], true
}

func (b Book) requestWhere(match func(RequestRecord) bool) (RequestRecord, bool) {
	idx := slices.IndexFunc(b.Requests, match)
	if idx < 0 {
		return RequestRecord{}, false
	}

	return b.Requests[idx], true
}

// Library is the projected set of books, each with its three custody ledgers.
// Removed books are gone together with their custody records.
type Library struct {
	byID  map[BookIDString]*Book
	order []BookIDString
}

// ProjectLibrary replays the history into a Library.
func ProjectLibrary(history DomainEvents) Library { //nolint:gocognit,cyclop // one case per custody event
	l := Library{byID: make(map[BookIDString]*Book)}

	for _, event := range history {
		switch e := event.(type) {
		case BookAdded:
			l.byID[e.BookID] = &Book{
				BookID:        e.BookID,
				OwnerID:       e.OwnerID,
				Title:         e.Title,
				ISBN:          e.ISBN,
				Barcode:       e.Barcode,
				Author:        e.Author,
				Publisher:     e.Publisher,
				IsLendable:    e.IsLendable,
				Rating:        e.Rating,
				PersonalNotes: e.PersonalNotes,
				ReadStatus:    e.ReadStatus,
				AddedAt:       e.OccurredAt,
			}
			l.order = append(l.order, e.BookID)

		case BookLendabilityChanged:
			if b, ok := l.byID[e.BookID]; ok {
				b.IsLendable = e.IsLendable
			}

		case BookRemoved:
			delete(l.byID, e.BookID)
			l.order = slices.DeleteFunc(l.order, func(id BookIDString) bool { return id == e.BookID })

		case BookLentToContact:
			if b, ok := l.byID[e.BookID]; ok {
				b.Loans = append(b.Loans, LoanRecord{
					LoanID:    e.LoanID,
					BookID:    e.BookID,
					OwnerID:   e.OwnerID,
					ContactID: e.ContactID,
					LoanDate:  e.LoanDate,
					DueDate:   e.DueDate,
					Notes:     e.Notes,
				})
			}

		case LoanReturned:
			l.updateLoan(e.BookID, e.LoanID, func(r *LoanRecord) {
				returnDate := e.ReturnDate
				r.ReturnDate = &returnDate
			})

		case BookBorrowedFromContact:
			if b, ok := l.byID[e.BookID]; ok {
				b.Borrows = append(b.Borrows, BorrowRecord{
					BorrowID:           e.BorrowID,
					BookID:             e.BookID,
					OwnerID:            e.OwnerID,
					ContactID:          e.ContactID,
					SourceName:         e.SourceName,
					BorrowedAt:         e.BorrowedAt,
					ExpectedReturnDate: e.ExpectedReturnDate,
					Notes:              e.Notes,
				})
			}

		case BorrowedBookReturned:
			l.updateBorrow(e.BookID, e.BorrowID, func(r *BorrowRecord) {
				returnDate := e.ReturnDate
				r.ReturnDate = &returnDate
			})

		case BorrowHistoryCleared:
			if b, ok := l.byID[e.BookID]; ok {
				b.Borrows = nil
			}

		case LoanRequested:
			if b, ok := l.byID[e.BookID]; ok {
				b.Requests = append(b.Requests, RequestRecord{
					RequestID:   e.RequestID,
					BookID:      e.BookID,
					LenderID:    e.LenderID,
					RequesterID: e.RequesterID,
					Status:      RequestPending,
					Message:     e.Message,
					DueDate:     e.DueDate,
					RequestedAt: e.OccurredAt,
				})
			}

		case LoanRequestAccepted:
			l.updateRequest(e.BookID, e.RequestID, func(r *RequestRecord) {
				r.Status = RequestAccepted
				r.ResponseMessage = e.ResponseMessage
				r.RespondedAt = timeRef(e.OccurredAt)
				if e.DueDate != nil {
					r.DueDate = e.DueDate
				}
			})

		case LoanRequestDeclined:
			l.updateRequest(e.BookID, e.RequestID, func(r *RequestRecord) {
				r.Status = RequestDeclined
				r.ResponseMessage = e.ResponseMessage
				r.RespondedAt = timeRef(e.OccurredAt)
			})

		case LoanRequestCancelled:
			l.updateRequest(e.BookID, e.RequestID, func(r *RequestRecord) {
				r.Status = RequestCancelled
				r.RespondedAt = timeRef(e.OccurredAt)
			})

		case LoanRequestReturned:
			l.updateRequest(e.BookID, e.RequestID, func(r *RequestRecord) {
				r.Status = RequestReturned
				r.ReturnDate = timeRef(e.ReturnDate)
			})
		}
	}

	return l
}

func (l Library) updateLoan(bookID BookIDString, loanID LoanIDString, update func(*LoanRecord)) {
	if b, ok := l.byID[bookID]; ok {
		for i := range b.Loans {
			if b.Loans[i].LoanID == loanID {
				update(&b.Loans[i])
			}
		}
	}
}

func (l Library) updateBorrow(bookID BookIDString, borrowID BorrowIDString, update func(*BorrowRecord)) {
	if b, ok := l.byID[bookID]; ok {
		for i := range b.Borrows {
			if b.Borrows[i].BorrowID == borrowID {
				update(&b.Borrows[i])
			}
		}
	}
}

func (l Library) updateRequest(bookID BookIDString, requestID RequestIDString, update func(*RequestRecord)) {
	if b, ok := l.byID[bookID]; ok {
		for i := range b.Requests {
			if b.Requests[i].RequestID == requestID {
				update(&b.Requests[i])
			}
		}
	}
}

// Book returns the book with bookID.
func (l Library) Book(bookID BookIDString) (Book, bool) {
	b, ok := l.byID[bookID]
	if !ok {
		return Book{}, false
	}

	return *b, true
}

// OwnedBook returns the book with bookID only if ownerID owns it.
func (l Library) OwnedBook(ownerID UserIDString, bookID BookIDString) (Book, bool) {
	b, ok := l.Book(bookID)
	if !ok || b.OwnerID != ownerID {
		return Book{}, false
	}

	return b, true
}

// BooksOwnedBy returns the owner's books in the order they were added.
func (l Library) BooksOwnedBy(ownerID UserIDString) []Book {
	return l.booksWhere(func(b *Book) bool { return b.OwnerID == ownerID })
}

// Books returns all books in the order they were added.
func (l Library) Books() []Book {
	return l.booksWhere(func(*Book) bool { return true })
}

func (l Library) booksWhere(match func(*Book) bool) []Book {
	books := make([]Book, 0)
	for _, id := range l.order {
		if b := l.byID[id]; match(b) {
			books = append(books, *b)
		}
	}

	return books
}

func timeRef(t time.Time) OptionalTS {
	return &t
}

// BookWithLoan returns the book holding the loan with loanID together with that loan.
func (l Library) BookWithLoan(loanID LoanIDString) (Book, LoanRecord, bool) {
	for _, b := range l.Books() {
		if loan, ok := b.Loan(loanID); ok {
			return b, loan, true
		}
	}

	return Book{}, LoanRecord{}, false
}

// BookWithBorrow returns the book holding the borrow record with borrowID together with that record.
func (l Library) BookWithBorrow(borrowID BorrowIDString) (Book, BorrowRecord, bool) {
	for _, b := range l.Books() {
		if borrow, ok := b.Borrow(borrowID); ok {
			return b, borrow, true
		}
	}

	return Book{}, BorrowRecord{}, false
}

// BookWithRequest returns the book holding the loan request with requestID together with that request.
func (l Library) BookWithRequest(requestID RequestIDString) (Book, RequestRecord, bool) {
	for _, b := range l.Books() {
		if request, ok := b.Request(requestID); ok {
			return b, request, true
		}
	}

	return Book{}, RequestRecord{}, false
}

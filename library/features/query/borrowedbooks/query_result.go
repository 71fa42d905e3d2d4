package borrowedbooks

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// BorrowedBookInfo represents one BorrowedBook record.
type BorrowedBookInfo struct {
	BorrowID           core.BorrowIDString  `json:"borrow_id"`
	BookID             core.BookIDString    `json:"book_id"`
	BookTitle          string               `json:"book_title"`
	ContactID          core.ContactIDString `json:"contact_id,omitempty"`
	SourceName         string               `json:"source_name"`
	BorrowedAt         time.Time            `json:"borrowed_at"`
	ExpectedReturnDate core.OptionalTS      `json:"expected_return_date,omitempty"`
	ReturnDate         core.OptionalTS      `json:"return_date,omitempty"`
	Status             core.CustodyStatus   `json:"status"`
	Notes              string               `json:"notes,omitempty"`
}

// Statistics counts every record of the owner regardless of the status filter.
type Statistics struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Overdue  int `json:"overdue"`
	Returned int `json:"returned"`
}

// BorrowedBooks represents the query result.
type BorrowedBooks struct {
	BorrowedBooks  []BorrowedBookInfo `json:"borrowed_books"`
	Count          int                `json:"count"`
	Statistics     Statistics         `json:"statistics"`
	SequenceNumber uint               `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r BorrowedBooks) GetSequenceNumber() uint {
	return r.SequenceNumber
}

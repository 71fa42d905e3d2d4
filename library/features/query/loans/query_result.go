package loans

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// LoanInfo represents one loan to a contact.
type LoanInfo struct {
	LoanID      core.LoanIDString    `json:"loan_id"`
	BookID      core.BookIDString    `json:"book_id"`
	BookTitle   string               `json:"book_title"`
	ContactID   core.ContactIDString `json:"contact_id"`
	ContactName string               `json:"contact_name"`
	LoanDate    time.Time            `json:"loan_date"`
	DueDate     core.OptionalTS      `json:"due_date,omitempty"`
	ReturnDate  core.OptionalTS      `json:"return_date,omitempty"`
	Status      core.CustodyStatus   `json:"status"`
	Notes       string               `json:"notes,omitempty"`
}

// Statistics counts every loan of the owner regardless of the status filter.
type Statistics struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Overdue  int `json:"overdue"`
	Returned int `json:"returned"`
}

// Loans represents the query result.
type Loans struct {
	Loans          []LoanInfo `json:"loans"`
	Count          int        `json:"count"`
	Statistics     Statistics `json:"statistics"`
	SequenceNumber uint       `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r Loans) GetSequenceNumber() uint {
	return r.SequenceNumber
}

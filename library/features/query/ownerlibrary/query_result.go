package ownerlibrary

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// AvailabilityInfo is the resolved custody status of a book.
type AvailabilityInfo struct {
	Status          core.AvailabilityStatus `json:"status"`
	CustodyStatus   core.CustodyStatus      `json:"custody_status,omitempty"`
	CounterpartName string                  `json:"counterpart_name,omitempty"`
	Since           core.OptionalTS         `json:"since,omitempty"`
	DueDate         core.OptionalTS         `json:"due_date,omitempty"`
}

// BookInfo is one book of the owner's collection.
type BookInfo struct {
	BookID        core.BookIDString `json:"book_id"`
	Title         string            `json:"title"`
	Author        string            `json:"author,omitempty"`
	Publisher     string            `json:"publisher,omitempty"`
	ISBN          string            `json:"isbn,omitempty"`
	Barcode       string            `json:"barcode,omitempty"`
	IsLendable    bool              `json:"is_lendable"`
	Rating        int               `json:"rating,omitempty"`
	PersonalNotes string            `json:"personal_notes,omitempty"`
	ReadStatus    string            `json:"read_status,omitempty"`
	AddedAt       time.Time         `json:"added_at"`
	Availability  AvailabilityInfo  `json:"availability"`
}

// Statistics counts the visible books. LoanedOut includes books lent to members.
type Statistics struct {
	Total        int `json:"total"`
	InPossession int `json:"in_possession"`
	LoanedOut    int `json:"loaned_out"`
	BorrowedIn   int `json:"borrowed_in"`
	Lendable     int `json:"lendable"`
}

// OwnerLibrary represents the query result.
type OwnerLibrary struct {
	Books          []BookInfo `json:"books"`
	Count          int        `json:"count"`
	Statistics     Statistics `json:"statistics"`
	SequenceNumber uint       `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r OwnerLibrary) GetSequenceNumber() uint {
	return r.SequenceNumber
}

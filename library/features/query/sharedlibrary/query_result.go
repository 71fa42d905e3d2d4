package sharedlibrary

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// CurrentLoan tells the viewer whether the book is out and until when.
type CurrentLoan struct {
	Status  core.AvailabilityStatus `json:"status"`
	DueDate core.OptionalTS         `json:"due_date,omitempty"`
}

// BookInfo is a lendable book without the owner's personal fields.
type BookInfo struct {
	BookID      core.BookIDString `json:"book_id"`
	Title       string            `json:"title"`
	Author      string            `json:"author,omitempty"`
	Publisher   string            `json:"publisher,omitempty"`
	ISBN        string            `json:"isbn,omitempty"`
	IsAvailable bool              `json:"is_available"`
	CurrentLoan *CurrentLoan      `json:"current_loan,omitempty"`
}

// SharedLibrary represents the query result.
type SharedLibrary struct {
	OwnerID        core.UserIDString `json:"owner_id"`
	OwnerUsername  string            `json:"owner_username"`
	Books          []BookInfo        `json:"books"`
	Count          int               `json:"count"`
	SequenceNumber uint              `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r SharedLibrary) GetSequenceNumber() uint {
	return r.SequenceNumber
}

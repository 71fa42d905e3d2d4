package bookavailability

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// BookAvailability is the custody status of one book.
// CounterpartName is only filled for the owner.
type BookAvailability struct {
	BookID          core.BookIDString       `json:"book_id"`
	Status          core.AvailabilityStatus `json:"status"`
	CustodyStatus   core.CustodyStatus      `json:"custody_status,omitempty"`
	CounterpartName string                  `json:"counterpart_name,omitempty"`
	Since           core.OptionalTS         `json:"since,omitempty"`
	DueDate         core.OptionalTS         `json:"due_date,omitempty"`
	SequenceNumber  uint                    `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r BookAvailability) GetSequenceNumber() uint {
	return r.SequenceNumber
}

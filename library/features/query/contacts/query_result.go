package contacts

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// ContactInfo represents one address-book entry.
type ContactInfo struct {
	ContactID      core.ContactIDString `json:"contact_id"`
	Name           string               `json:"name"`
	Email          string               `json:"email,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	LinkedUserID   core.UserIDString    `json:"linked_user_id,omitempty"`
	LinkedUsername string               `json:"linked_username,omitempty"`
	LibraryShared  bool                 `json:"library_shared"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Contacts represents the query result.
type Contacts struct {
	Contacts       []ContactInfo `json:"contacts"`
	Count          int           `json:"count"`
	SequenceNumber uint          `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r Contacts) GetSequenceNumber() uint {
	return r.SequenceNumber
}

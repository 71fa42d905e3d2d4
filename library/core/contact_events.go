package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactAddedEventType          = "ContactAdded"
	ContactLinkedEventType         = "ContactLinked"
	LibrarySharingChangedEventType = "LibrarySharingChanged"
)

// ContactFields are the address-book fields of a contact.
type ContactFields struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// ContactAdded represents a new entry in an owner's address book.
// LinkedUserID is set when the contact is created by accepting an invitation.
type ContactAdded struct {
	EventType    EventTypeString
	ContactID    ContactIDString
	OwnerID      UserIDString
	Name         string
	Email        string
	Phone        string
	Notes        string
	LinkedUserID UserIDString
	OccurredAt   OccurredAtTS
}

// BuildContactAdded creates a new ContactAdded event.
func BuildContactAdded(
	contactID uuid.UUID,
	ownerID UserIDString,
	fields ContactFields,
	linkedUserID UserIDString,
	occurredAt time.Time,
) ContactAdded {

	return ContactAdded{
		EventType:    ContactAddedEventType,
		ContactID:    contactID.String(),
		OwnerID:      ownerID,
		Name:         fields.Name,
		Email:        fields.Email,
		Phone:        fields.Phone,
		Notes:        fields.Notes,
		LinkedUserID: linkedUserID,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e ContactAdded) IsEventType() string {
	return ContactAddedEventType
}

func (e ContactAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// ContactLinked points an existing contact at a platform member.
type ContactLinked struct {
	EventType    EventTypeString
	ContactID    ContactIDString
	OwnerID      UserIDString
	LinkedUserID UserIDString
	OccurredAt   OccurredAtTS
}

// BuildContactLinked creates a new ContactLinked event.
func BuildContactLinked(contactID ContactIDString, ownerID UserIDString, linkedUserID UserIDString, occurredAt time.Time) ContactLinked {
	return ContactLinked{
		EventType:    ContactLinkedEventType,
		ContactID:    contactID,
		OwnerID:      ownerID,
		LinkedUserID: linkedUserID,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e ContactLinked) IsEventType() string {
	return ContactLinkedEventType
}

func (e ContactLinked) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LibrarySharingChanged grants or revokes the linked member's access to the owner's lendable books.
type LibrarySharingChanged struct {
	EventType     EventTypeString
	ContactID     ContactIDString
	OwnerID       UserIDString
	LinkedUserID  UserIDString
	LibraryShared bool
	OccurredAt    OccurredAtTS
}

// BuildLibrarySharingChanged creates a new LibrarySharingChanged event.
func BuildLibrarySharingChanged(
	contactID ContactIDString,
	ownerID UserIDString,
	linkedUserID UserIDString,
	shared bool,
	occurredAt time.Time,
) LibrarySharingChanged {

	return LibrarySharingChanged{
		EventType:     LibrarySharingChangedEventType,
		ContactID:     contactID,
		OwnerID:       ownerID,
		LinkedUserID:  linkedUserID,
		LibraryShared: shared,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e LibrarySharingChanged) IsEventType() string {
	return LibrarySharingChangedEventType
}

func (e LibrarySharingChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	reasonContactRequired     = "contact is required"
	reasonContactIDRequired   = "contact id is required"
	reasonContactNameRequired = "contact name is required"
	reasonContactNotFound     = "contact not found"
)

// ContactRef references the contact a loan or borrow is attributed to.
// It is a closed sum type: ContactByID, ContactByName or ContactDetails.
type ContactRef interface {
	isContactRef()
}

// ContactByID references an existing contact of the caller.
type ContactByID struct {
	ContactID ContactIDString
}

// ContactByName finds the caller's contact by normalized name, or creates one with just that name.
type ContactByName struct {
	Name string
}

// ContactDetails finds the caller's contact by normalized name, or creates one with all the fields.
type ContactDetails struct {
	ContactFields
}

func (ContactByID) isContactRef()    {}
func (ContactByName) isContactRef()  {}
func (ContactDetails) isContactRef() {}

// ResolvedContact is the outcome of ResolveContact.
type ResolvedContact struct {
	ContactID ContactIDString
	Name      string
}

// ResolveContact resolves ref within the owner's contacts.
// When the reference names a contact that does not exist yet, the returned ContactAdded event creates it
// with newContactID and must be appended together with the event that uses the contact.
func ResolveContact(
	operation string,
	contacts ContactBook,
	ownerID UserIDString,
	ref ContactRef,
	newContactID uuid.UUID,
	occurredAt time.Time,
) (ResolvedContact, *ContactAdded, error) {

	switch r := ref.(type) {
	case ContactByID:
		if strings.TrimSpace(r.ContactID) == "" {
			return ResolvedContact{}, nil, Invalid(operation, reasonContactIDRequired)
		}

		c, ok := contacts.ByID(ownerID, r.ContactID)
		if !ok {
			return ResolvedContact{}, nil, NotFound(operation, reasonContactNotFound)
		}

		return ResolvedContact{ContactID: c.ContactID, Name: c.Name}, nil, nil

	case ContactByName:
		return findOrCreateContact(operation, contacts, ownerID, ContactFields{Name: r.Name}, newContactID, occurredAt)

	case ContactDetails:
		return findOrCreateContact(operation, contacts, ownerID, r.ContactFields, newContactID, occurredAt)

	default: // nil

		return ResolvedContact{}, nil, Invalid(operation, reasonContactRequired)
	}
}

func findOrCreateContact(
	operation string,
	contacts ContactBook,
	ownerID UserIDString,
	fields ContactFields,
	newContactID uuid.UUID,
	occurredAt time.Time,
) (ResolvedContact, *ContactAdded, error) {

	name := strings.Join(strings.Fields(fields.Name), " ")
	if name == "" {
		return ResolvedContact{}, nil, Invalid(operation, reasonContactNameRequired)
	}

	if c, ok := contacts.ByNormalizedName(ownerID, name); ok {
		return ResolvedContact{ContactID: c.ContactID, Name: c.Name}, nil, nil
	}

	if err := RequireUUID(operation, "new contact id", newContactID); err != nil {
		return ResolvedContact{}, nil, err
	}

	fields.Name = name
	event := BuildContactAdded(newContactID, ownerID, fields, "", occurredAt)

	return ResolvedContact{ContactID: event.ContactID, Name: name}, &event, nil
}

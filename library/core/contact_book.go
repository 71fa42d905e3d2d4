package core

import (
	"slices"
	"strings"
	"time"
)

// Contact is one address-book entry of an owner.
type Contact struct {
	ContactID     ContactIDString
	OwnerID       UserIDString
	Name          string
	Email         string
	Phone         string
	Notes         string
	LinkedUserID  UserIDString
	LibraryShared bool
	CreatedAt     time.Time
}

// IsLinked reports whether the contact points at a platform member.
func (c Contact) IsLinked() bool {
	return c.LinkedUserID != ""
}

// ContactBook holds the contacts of any number of owners. Lookups are always owner-scoped.
type ContactBook struct {
	byID  map[ContactIDString]*Contact
	order []ContactIDString
}

// ProjectContactBook replays the history into a ContactBook.
func ProjectContactBook(history DomainEvents) ContactBook {
	cb := ContactBook{byID: make(map[ContactIDString]*Contact)}

	for _, event := range history {
		cb.apply(event)
	}

	return cb
}

func (cb *ContactBook) apply(event DomainEvent) {
	switch e := event.(type) {
	case ContactAdded:
		cb.byID[e.ContactID] = &Contact{
			ContactID:    e.ContactID,
			OwnerID:      e.OwnerID,
			Name:         e.Name,
			Email:        e.Email,
			Phone:        e.Phone,
			Notes:        e.Notes,
			LinkedUserID: e.LinkedUserID,
			CreatedAt:    e.OccurredAt,
		}
		cb.order = append(cb.order, e.ContactID)

	case ContactLinked:
		if c, ok := cb.byID[e.ContactID]; ok {
			c.LinkedUserID = e.LinkedUserID
		}

	case LibrarySharingChanged:
		if c, ok := cb.byID[e.ContactID]; ok {
			c.LibraryShared = e.LibraryShared
		}
	}
}

// ByID returns the owner's contact with contactID. Another owner's contact is not found.
func (cb ContactBook) ByID(ownerID UserIDString, contactID ContactIDString) (Contact, bool) {
	c, ok := cb.byID[contactID]
	if !ok || c.OwnerID != ownerID {
		return Contact{}, false
	}

	return *c, true
}

// ByNormalizedName finds the owner's contact whose name normalizes to the same value as name.
func (cb ContactBook) ByNormalizedName(ownerID UserIDString, name string) (Contact, bool) {
	normalized := NormalizeName(name)

	return cb.find(ownerID, func(c Contact) bool { return NormalizeName(c.Name) == normalized })
}

// ByLinkedUser finds the owner's contact linked to userID.
func (cb ContactBook) ByLinkedUser(ownerID UserIDString, userID UserIDString) (Contact, bool) {
	if userID == "" {
		return Contact{}, false
	}

	return cb.find(ownerID, func(c Contact) bool { return c.LinkedUserID == userID })
}

// ByEmail finds the owner's contact with the same email, compared case-insensitively.
func (cb ContactBook) ByEmail(ownerID UserIDString, email string) (Contact, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Contact{}, false
	}

	return cb.find(ownerID, func(c Contact) bool { return strings.EqualFold(strings.TrimSpace(c.Email), email) })
}

// SharingWith reports whether owner has a contact linked to viewer with library sharing on.
func (cb ContactBook) SharingWith(ownerID UserIDString, viewerID UserIDString) bool {
	c, ok := cb.ByLinkedUser(ownerID, viewerID)

	return ok && c.LibraryShared
}

// OwnedBy returns the owner's contacts in creation order.
func (cb ContactBook) OwnedBy(ownerID UserIDString) []Contact {
	contacts := make([]Contact, 0)

	for _, id := range cb.order {
		if c := cb.byID[id]; c.OwnerID == ownerID {
			contacts = append(contacts, *c)
		}
	}

	return contacts
}

// NameOf returns the name of a contact regardless of owner, or "" when unknown.
func (cb ContactBook) NameOf(contactID ContactIDString) string {
	if c, ok := cb.byID[contactID]; ok {
		return c.Name
	}

	return ""
}

func (cb ContactBook) find(ownerID UserIDString, match func(Contact) bool) (Contact, bool) {
	idx := slices.IndexFunc(cb.order, func(id ContactIDString) bool {
		c := cb.byID[id]
		return c.OwnerID == ownerID && match(*c)
	})

	if idx < 0 {
		return Contact{}, false
	}

	return *cb.byID[cb.order[idx]], true
}

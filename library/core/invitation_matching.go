package core

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ContactMatch is how one side of an accepted invitation ends up with a contact for the other side.
type ContactMatch string

const (
	MatchedByLinkedUser ContactMatch = "linked_user"
	MatchedByEmail      ContactMatch = "email"
	MatchedByUsername   ContactMatch = "username"
	MatchCreated        ContactMatch = "created"
)

type contactMatcher struct {
	match ContactMatch
	find  func(contacts ContactBook, ownerID UserIDString, counterpart Member) (Contact, bool)
}

// contactMatchers is the ordered find-or-create chain, first hit wins.
// Only unlinked contacts are candidates for the email and username steps.
var contactMatchers = []contactMatcher{
	{
		match: MatchedByLinkedUser,
		find: func(contacts ContactBook, ownerID UserIDString, counterpart Member) (Contact, bool) {
			return contacts.ByLinkedUser(ownerID, counterpart.UserID)
		},
	},
	{
		match: MatchedByEmail,
		find: func(contacts ContactBook, ownerID UserIDString, counterpart Member) (Contact, bool) {
			c, ok := contacts.ByEmail(ownerID, counterpart.Email)
			return c, ok && !c.IsLinked()
		},
	},
	{
		match: MatchedByUsername,
		find: func(contacts ContactBook, ownerID UserIDString, counterpart Member) (Contact, bool) {
			c, ok := contacts.ByNormalizedName(ownerID, counterpart.Username)
			return c, ok && !c.IsLinked()
		},
	},
}

// MatchInvitationContact finds or creates ownerID's contact for counterpart when an invitation is accepted.
// It returns the contact id, how it was matched and the events that link or create it (none for an existing link).
func MatchInvitationContact(
	contacts ContactBook,
	ownerID UserIDString,
	counterpart Member,
	newContactID uuid.UUID,
	occurredAt time.Time,
) (ContactIDString, ContactMatch, DomainEvents) {

	for _, matcher := range contactMatchers {
		c, ok := matcher.find(contacts, ownerID, counterpart)
		if !ok {
			continue
		}

		if matcher.match == MatchedByLinkedUser {
			return c.ContactID, matcher.match, DomainEvents{}
		}

		return c.ContactID, matcher.match, DomainEvents{
			BuildContactLinked(c.ContactID, ownerID, counterpart.UserID, occurredAt),
		}
	}

	created := BuildContactAdded(
		newContactID,
		ownerID,
		ContactFields{Name: freeContactName(contacts, ownerID, counterpart), Email: counterpart.Email},
		counterpart.UserID,
		occurredAt,
	)

	return created.ContactID, MatchCreated, DomainEvents{created}
}

// freeContactName is the counterpart's username, numbered when ownerID already has a contact of that
// name that is linked to someone else.
func freeContactName(contacts ContactBook, ownerID UserIDString, counterpart Member) string {
	base := counterpart.Username
	if base == "" {
		base = counterpart.UserID
	}

	name := base
	for n := 2; ; n++ {
		if _, taken := contacts.ByNormalizedName(ownerID, name); !taken {
			return name
		}

		name = base + " " + strconv.Itoa(n)
	}
}

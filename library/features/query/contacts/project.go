package contacts

import (
	"slices"
	"strings"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project lists the owner's contacts sorted by name.
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) Contacts {
	members := core.ProjectMembers(history)
	owned := core.ProjectContactBook(history).OwnedBy(query.OwnerID)

	result := Contacts{
		Contacts:       make([]ContactInfo, 0, len(owned)),
		Count:          len(owned),
		SequenceNumber: maxSequenceNumber,
	}

	for _, c := range owned {
		result.Contacts = append(result.Contacts, ContactInfo{
			ContactID:      c.ContactID,
			Name:           c.Name,
			Email:          c.Email,
			Phone:          c.Phone,
			Notes:          c.Notes,
			LinkedUserID:   c.LinkedUserID,
			LinkedUsername: members.UsernameOf(c.LinkedUserID),
			LibraryShared:  c.LibraryShared,
			CreatedAt:      c.CreatedAt,
		})
	}

	slices.SortStableFunc(result.Contacts, func(a, b ContactInfo) int {
		return strings.Compare(core.NormalizeName(a.Name), core.NormalizeName(b.Name))
	})

	return result
}

// BuildEventFilter is the owner's address book plus the member directory.
func BuildEventFilter(ownerID core.UserIDString) eventstore.Filter {
	return eventstore.Union(core.OwnerContactsScope(ownerID), core.AllMembersScope())
}

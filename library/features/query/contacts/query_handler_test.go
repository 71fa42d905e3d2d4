package contacts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/contacts"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_QueryHandler_Handle_ListsOwnContactsByName(t *testing.T) {
	// arrange
	es := GivenEventStore(t)
	at := time.Now()
	ownerID, bobID := GivenUniqueID(t), GivenUniqueID(t)
	GivenEvents(t, es,
		FixtureMemberRegistered(bobID, "bob", at),
		FixtureContactAdded(GivenUniqueID(t), ownerID, "zoe", at),
		FixtureContactAdded(GivenUniqueID(t), GivenUniqueID(t), "someone else's", at),
	)
	GivenEvents(t, es, FixtureLinkedContact(GivenUniqueID(t), ownerID, bobID, "Bob", true, at)...)

	// act
	result, err := contacts.NewQueryHandler(es).Handle(context.Background(), contacts.BuildQuery(ownerID))

	// assert
	require.NoError(t, err)
	require.Len(t, result.Contacts, 2)
	assert.Equal(t, "Bob", result.Contacts[0].Name)
	assert.Equal(t, "bob", result.Contacts[0].LinkedUsername)
	assert.True(t, result.Contacts[0].LibraryShared)
	assert.Equal(t, "zoe", result.Contacts[1].Name)
	assert.Empty(t, result.Contacts[1].LinkedUsername)
}

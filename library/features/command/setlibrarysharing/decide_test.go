package setlibrarysharing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/setlibrarysharing"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Decide_Success_SharingTurnedOn(t *testing.T) {
	// arrange
	ownerID, memberID, contactID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	history := FixtureLinkedContact(contactID, ownerID, memberID, "bob", false, now.Add(-time.Hour))

	// act
	result := setlibrarysharing.Decide(history, setlibrarysharing.BuildCommand(ownerID, uuid.MustParse(contactID), true, now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)

	changed, ok := result.Events[0].(core.LibrarySharingChanged)
	require.True(t, ok, "Expected LibrarySharingChanged event")
	assert.True(t, changed.LibraryShared)
	assert.Equal(t, memberID, changed.LinkedUserID)
}

func Test_Decide_Idempotent_WhenUnchanged(t *testing.T) {
	// arrange
	ownerID, memberID, contactID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	history := FixtureLinkedContact(contactID, ownerID, memberID, "bob", true, now.Add(-time.Hour))

	// act
	result := setlibrarysharing.Decide(history, setlibrarysharing.BuildCommand(ownerID, uuid.MustParse(contactID), true, now))

	// assert
	assert.True(t, result.IsIdempotent())
	assert.Empty(t, result.Events)
	assert.Equal(t, contactID, result.EntityID)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	ownerID, otherOwnerID, contactID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()

	testCases := []struct {
		name           string
		history        core.DomainEvents
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "contact unknown",
			expectedKind:   core.ErrNotFound,
			expectedReason: "contact not found",
		},
		{
			name:           "contact of another owner",
			history:        FixtureLinkedContact(contactID, otherOwnerID, GivenUniqueID(t), "bob", false, now),
			expectedKind:   core.ErrNotFound,
			expectedReason: "contact not found",
		},
		{
			name:           "contact not linked",
			history:        core.DomainEvents{FixtureContactAdded(contactID, ownerID, "Jean", now)},
			expectedKind:   core.ErrValidation,
			expectedReason: "contact is not linked to a member",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := setlibrarysharing.Decide(tc.history, setlibrarysharing.BuildCommand(ownerID, uuid.MustParse(contactID), true, now))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

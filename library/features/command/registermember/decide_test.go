package registermember_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/registermember"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Decide_Success_WhenMemberIsNew(t *testing.T) {
	// arrange
	userID := GivenUniqueID(t)
	now := time.Now()

	history := core.DomainEvents{
		FixtureMemberRegistered(GivenUniqueID(t), "alice", now.Add(-time.Hour)),
	}

	command := registermember.BuildCommand(userID, "  bob ", "bob@example.org", now)

	// act
	result := registermember.Decide(history, command)

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)
	assert.Equal(t, userID, result.EntityID)

	registered, ok := result.Events[0].(core.MemberRegistered)
	require.True(t, ok, "Expected MemberRegistered event")
	assert.Equal(t, userID, registered.UserID)
	assert.Equal(t, "bob", registered.Username)
	assert.Equal(t, "bob@example.org", registered.Email)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	userID := GivenUniqueID(t)
	now := time.Now()

	testCases := []struct {
		name           string
		history        core.DomainEvents
		command        registermember.Command
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "user id missing",
			command:        registermember.BuildCommand("", "bob", "", now),
			expectedKind:   core.ErrValidation,
			expectedReason: "user id is required",
		},
		{
			name:           "username blank",
			command:        registermember.BuildCommand(userID, "   ", "", now),
			expectedKind:   core.ErrValidation,
			expectedReason: "username is required",
		},
		{
			name:           "member already registered",
			history:        core.DomainEvents{FixtureMemberRegistered(userID, "bob", now.Add(-time.Hour))},
			command:        registermember.BuildCommand(userID, "robert", "", now),
			expectedKind:   core.ErrConflict,
			expectedReason: "member is already registered",
		},
		{
			name:           "username taken, compared case-insensitively",
			history:        core.DomainEvents{FixtureMemberRegistered(GivenUniqueID(t), "Bob", now.Add(-time.Hour))},
			command:        registermember.BuildCommand(userID, "bob", "", now),
			expectedKind:   core.ErrConflict,
			expectedReason: "username is already taken",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := registermember.Decide(tc.history, tc.command)

			// assert
			assert.Equal(t, "error", result.Outcome)
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

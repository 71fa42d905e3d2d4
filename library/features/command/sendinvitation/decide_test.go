package sendinvitation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/sendinvitation"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func givenMembers(t *testing.T, aliceID, bobID string, at time.Time) core.DomainEvents {
	t.Helper()

	return core.DomainEvents{
		FixtureMemberRegistered(aliceID, "alice", at),
		FixtureMemberRegistered(bobID, "bob", at),
	}
}

func Test_Decide_Success_InvitationIsPending(t *testing.T) {
	// arrange
	aliceID, bobID, invitationID := GivenUniqueID(t), GivenUniqueID(t), uuid.New()
	now := time.Now()
	history := givenMembers(t, aliceID, bobID, now.Add(-time.Hour))

	// act
	result := sendinvitation.Decide(history, sendinvitation.BuildCommand(invitationID, aliceID, bobID, " hi ", now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)
	assert.Equal(t, invitationID.String(), result.EntityID)

	sent, ok := result.Events[0].(core.InvitationSent)
	require.True(t, ok, "Expected InvitationSent event")
	assert.Equal(t, aliceID, sent.SenderID)
	assert.Equal(t, bobID, sent.RecipientID)
	assert.Equal(t, "hi", sent.Message)
}

func Test_Decide_Success_AfterDeclinedInvitation(t *testing.T) {
	// arrange
	aliceID, bobID := GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	earlier := FixtureInvitationSent(GivenUniqueID(t), bobID, aliceID, now.Add(-time.Hour))
	history := append(
		givenMembers(t, aliceID, bobID, now.Add(-2*time.Hour)),
		earlier,
		FixtureInvitationDeclined(earlier, now.Add(-time.Minute)),
	)

	// act
	result := sendinvitation.Decide(history, sendinvitation.BuildCommand(uuid.New(), aliceID, bobID, "", now))

	// assert
	assert.NoError(t, result.HasError())
}

//nolint:funlen
func Test_Decide_BusinessErrors(t *testing.T) {
	aliceID, bobID := GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	members := givenMembers(t, aliceID, bobID, now.Add(-time.Hour))

	testCases := []struct {
		name           string
		history        core.DomainEvents
		recipientID    string
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "inviting yourself",
			history:        members,
			recipientID:    aliceID,
			expectedKind:   core.ErrValidation,
			expectedReason: "cannot invite yourself",
		},
		{
			name:           "recipient not registered",
			history:        core.DomainEvents{FixtureMemberRegistered(aliceID, "alice", now)},
			recipientID:    bobID,
			expectedKind:   core.ErrNotFound,
			expectedReason: "recipient is not a registered member",
		},
		{
			name:           "pending invitation in the same direction",
			history:        append(core.DomainEvents{FixtureInvitationSent(GivenUniqueID(t), aliceID, bobID, now)}, members...),
			recipientID:    bobID,
			expectedKind:   core.ErrConflict,
			expectedReason: "a pending invitation already exists between these members",
		},
		{
			name:           "pending invitation in the other direction",
			history:        append(core.DomainEvents{FixtureInvitationSent(GivenUniqueID(t), bobID, aliceID, now)}, members...),
			recipientID:    bobID,
			expectedKind:   core.ErrConflict,
			expectedReason: "a pending invitation already exists between these members",
		},
		{
			name:           "recipient already linked the sender",
			history:        append(FixtureLinkedContact(GivenUniqueID(t), bobID, aliceID, "alice", false, now), members...),
			recipientID:    bobID,
			expectedKind:   core.ErrConflict,
			expectedReason: "members are already connected",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := sendinvitation.BuildCommand(uuid.New(), aliceID, tc.recipientID, "", now)

			// act
			result := sendinvitation.Decide(tc.history, command)

			// assert
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

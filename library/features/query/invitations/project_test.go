package invitations_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/invitations"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func invitationIDs(result invitations.Invitations) []string {
	ids := make([]string, 0, len(result.Invitations))
	for _, i := range result.Invitations {
		ids = append(ids, i.InvitationID)
	}

	return ids
}

func Test_Project_Boxes(t *testing.T) {
	now := time.Now()
	meID, bobID, carolID, daveID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)

	fromBob := FixtureInvitationSent(GivenUniqueID(t), bobID, meID, now.Add(-4*time.Hour))
	fromCarol := FixtureInvitationSent(GivenUniqueID(t), carolID, meID, now.Add(-3*time.Hour))
	toDave := FixtureInvitationSent(GivenUniqueID(t), meID, daveID, now.Add(-2*time.Hour))
	toCarol := FixtureInvitationSent(GivenUniqueID(t), meID, carolID, now.Add(-time.Hour))
	toBob := FixtureInvitationSent(GivenUniqueID(t), meID, bobID, now.Add(-time.Minute))

	history := core.DomainEvents{
		FixtureMemberRegistered(meID, "me", now),
		FixtureMemberRegistered(bobID, "bob", now),
		fromBob,
		fromCarol,
		FixtureInvitationDeclined(fromCarol, now),
		toDave,
		FixtureInvitationAccepted(toDave, now),
		toCarol,
		FixtureInvitationCancelled(toCarol, now),
		toBob,
	}

	testCases := []struct {
		name     string
		box      invitations.Box
		expected []string
	}{
		{name: "received shows pending only", box: invitations.Received, expected: []string{fromBob.InvitationID}},
		{name: "sent hides declined and cancelled", box: invitations.Sent, expected: []string{toBob.InvitationID, toDave.InvitationID}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := invitations.Project(history, invitations.BuildQuery(meID, tc.box), 10)

			// assert
			assert.Equal(t, tc.expected, invitationIDs(result))
			assert.Equal(t, 1, result.PendingReceivedCount)
		})
	}
}

func Test_Project_ResolvesUsernames(t *testing.T) {
	// arrange
	now := time.Now()
	senderID, recipientID := GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureMemberRegistered(senderID, "alice", now),
		FixtureMemberRegistered(recipientID, "bob", now),
		FixtureInvitationSent(GivenUniqueID(t), senderID, recipientID, now),
	}

	// act
	result := invitations.Project(history, invitations.BuildQuery(recipientID, invitations.Received), 3)

	// assert
	require.Len(t, result.Invitations, 1)
	assert.Equal(t, "alice", result.Invitations[0].SenderUsername)
	assert.Equal(t, "bob", result.Invitations[0].RecipientUsername)
	assert.Equal(t, core.InvitationStatusPending, result.Invitations[0].Status)
}

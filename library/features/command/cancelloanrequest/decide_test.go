package cancelloanrequest_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/cancelloanrequest"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Decide_Success_RequestIsCancelled(t *testing.T) {
	// arrange
	now := time.Now()
	lenderID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	requested := FixtureLoanRequested(GivenUniqueID(t), bookID, lenderID, GivenUniqueID(t), now.Add(-time.Hour))
	history := core.DomainEvents{FixtureBookAdded(bookID, lenderID, true, now.Add(-time.Hour)), requested}

	// act
	result := cancelloanrequest.Decide(history, cancelloanrequest.BuildCommand(uuid.MustParse(requested.RequestID), requested.RequesterID, now))

	// assert
	require.NoError(t, result.HasError())
	assert.IsType(t, core.LoanRequestCancelled{}, result.Events[0])
	assert.Equal(t, requested.RequestID, result.EntityID)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	now := time.Now()
	lenderID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	requested := FixtureLoanRequested(GivenUniqueID(t), bookID, lenderID, GivenUniqueID(t), now.Add(-time.Hour))
	pending := core.DomainEvents{FixtureBookAdded(bookID, lenderID, true, now.Add(-time.Hour)), requested}

	testCases := []struct {
		name           string
		history        core.DomainEvents
		actorID        string
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "book removed",
			history:        append(append(core.DomainEvents{}, pending...), FixtureBookRemoved(bookID, lenderID, now)),
			actorID:        requested.RequesterID,
			expectedKind:   core.ErrNotFound,
			expectedReason: "loan request not found",
		},
		{
			name:           "lender cancels",
			history:        pending,
			actorID:        lenderID,
			expectedKind:   core.ErrForbidden,
			expectedReason: "only the requester can cancel a loan request",
		},
		{
			name:           "already accepted",
			history:        append(append(core.DomainEvents{}, pending...), FixtureLoanRequestAccepted(requested, nil, now)),
			actorID:        requested.RequesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "loan request is not pending",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := cancelloanrequest.Decide(tc.history, cancelloanrequest.BuildCommand(uuid.MustParse(requested.RequestID), tc.actorID, now))

			// assert
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

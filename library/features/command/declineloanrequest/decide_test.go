package declineloanrequest_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/declineloanrequest"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Decide_Success_RequestIsDeclined(t *testing.T) {
	// arrange
	now := time.Now()
	lenderID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	requested := FixtureLoanRequested(GivenUniqueID(t), bookID, lenderID, GivenUniqueID(t), now.Add(-time.Hour))
	history := core.DomainEvents{FixtureBookAdded(bookID, lenderID, true, now.Add(-time.Hour)), requested}

	// act
	result := declineloanrequest.Decide(history, declineloanrequest.BuildCommand(uuid.MustParse(requested.RequestID), lenderID, " not now ", now))

	// assert
	require.NoError(t, result.HasError())
	declined, ok := result.Events[0].(core.LoanRequestDeclined)
	require.True(t, ok, "Expected LoanRequestDeclined event")
	assert.Equal(t, "not now", declined.ResponseMessage)

	book, _ := core.ProjectLibrary(append(history, declined)).Book(bookID)
	request, _ := book.Request(requested.RequestID)
	assert.Equal(t, core.RequestDeclined, request.Status)
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
			name:           "stranger",
			history:        pending,
			actorID:        GivenUniqueID(t),
			expectedKind:   core.ErrNotFound,
			expectedReason: "loan request not found",
		},
		{
			name:           "requester declines",
			history:        pending,
			actorID:        requested.RequesterID,
			expectedKind:   core.ErrForbidden,
			expectedReason: "only the lender can decline a loan request",
		},
		{
			name:           "already cancelled",
			history:        append(append(core.DomainEvents{}, pending...), FixtureLoanRequestCancelled(requested, now)),
			actorID:        lenderID,
			expectedKind:   core.ErrConflict,
			expectedReason: "loan request is not pending",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := declineloanrequest.Decide(tc.history, declineloanrequest.BuildCommand(uuid.MustParse(requested.RequestID), tc.actorID, "", now))

			// assert
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

package requestloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/requestloan"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

type sharedBook struct {
	lenderID, requesterID, bookID, contactID string
	history                                  core.DomainEvents
}

func givenSharedLendableBook(t *testing.T, at time.Time) sharedBook {
	t.Helper()

	s := sharedBook{
		lenderID:    GivenUniqueID(t),
		requesterID: GivenUniqueID(t),
		bookID:      GivenUniqueID(t),
		contactID:   GivenUniqueID(t),
	}
	s.history = append(
		core.DomainEvents{FixtureBookAdded(s.bookID, s.lenderID, true, at)},
		FixtureLinkedContact(s.contactID, s.lenderID, s.requesterID, "bob", true, at)...,
	)

	return s
}

func (s sharedBook) with(events ...core.DomainEvent) core.DomainEvents {
	return append(append(core.DomainEvents{}, s.history...), events...)
}

func Test_Decide_Success_RequestIsPending(t *testing.T) {
	// arrange
	now := time.Now()
	s := givenSharedLendableBook(t, now.Add(-time.Hour))
	command := requestloan.BuildCommand(uuid.New(), s.requesterID, uuid.MustParse(s.bookID), " please ", nil, now)

	// act
	result := requestloan.Decide(s.history, command)

	// assert
	require.NoError(t, result.HasError())
	requested, ok := result.Events[0].(core.LoanRequested)
	require.True(t, ok, "Expected LoanRequested event")
	assert.Equal(t, s.lenderID, requested.LenderID)
	assert.Equal(t, "please", requested.Message)
	assert.Equal(t, command.RequestID.String(), result.EntityID)
}

func Test_Decide_Success_AfterDeclinedRequest(t *testing.T) {
	// arrange
	now := time.Now()
	s := givenSharedLendableBook(t, now.Add(-time.Hour))
	earlier := FixtureLoanRequested(GivenUniqueID(t), s.bookID, s.lenderID, s.requesterID, now.Add(-30*time.Minute))

	// act
	result := requestloan.Decide(
		s.with(earlier, FixtureLoanRequestDeclined(earlier, now.Add(-time.Minute))),
		requestloan.BuildCommand(uuid.New(), s.requesterID, uuid.MustParse(s.bookID), "", nil, now),
	)

	// assert
	assert.NoError(t, result.HasError())
}

//nolint:funlen
func Test_Decide_BusinessErrors(t *testing.T) {
	now := time.Now()
	s := givenSharedLendableBook(t, now.Add(-time.Hour))
	pending := FixtureLoanRequested(GivenUniqueID(t), s.bookID, s.lenderID, s.requesterID, now.Add(-time.Minute))
	other := FixtureLoanRequested(GivenUniqueID(t), s.bookID, s.lenderID, GivenUniqueID(t), now.Add(-time.Minute))
	borrowed := FixtureBookBorrowed(GivenUniqueID(t), s.bookID, s.lenderID, "", "Paul", nil, now.Add(-3*time.Hour))

	testCases := []struct {
		name           string
		history        core.DomainEvents
		requesterID    string
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "book unknown",
			requesterID:    s.requesterID,
			expectedKind:   core.ErrNotFound,
			expectedReason: "book not found",
		},
		{
			name:           "borrowed book given back to its source",
			history:        s.with(borrowed, FixtureBorrowReturned(borrowed, now.Add(-2*time.Hour))),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrNotFound,
			expectedReason: "book not found",
		},
		{
			name:           "still borrowed",
			history:        s.with(borrowed),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "book is not available",
		},
		{
			name:           "own book",
			history:        s.history,
			requesterID:    s.lenderID,
			expectedKind:   core.ErrValidation,
			expectedReason: "cannot request your own book",
		},
		{
			name:           "library not shared with requester",
			history:        s.history,
			requesterID:    GivenUniqueID(t),
			expectedKind:   core.ErrForbidden,
			expectedReason: "library is not shared with you",
		},
		{
			name:           "sharing switched off",
			history:        s.with(core.BuildLibrarySharingChanged(s.contactID, s.lenderID, s.requesterID, false, now)),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrForbidden,
			expectedReason: "library is not shared with you",
		},
		{
			name:           "not lendable",
			history:        s.with(core.BuildBookLendabilityChanged(s.bookID, s.lenderID, false, now)),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "book is not lendable",
		},
		{
			name:           "already pending",
			history:        s.with(pending),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "you already have a pending request for this book",
		},
		{
			name:           "lent to another member",
			history:        s.with(other, FixtureLoanRequestAccepted(other, nil, now)),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "book is not available",
		},
		{
			name:           "loaned to a contact",
			history:        s.with(FixtureBookLent(GivenUniqueID(t), s.bookID, s.lenderID, GivenUniqueID(t), nil, now)),
			requesterID:    s.requesterID,
			expectedKind:   core.ErrConflict,
			expectedReason: "book is not available",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := requestloan.Decide(tc.history, requestloan.BuildCommand(uuid.New(), tc.requesterID, uuid.MustParse(s.bookID), "", nil, now))

			// assert
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

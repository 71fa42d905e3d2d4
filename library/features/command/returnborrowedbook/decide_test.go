package returnborrowedbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnborrowedbook"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func givenActiveBorrow(t *testing.T, ownerID string, at time.Time) (core.BookBorrowedFromContact, core.DomainEvents) {
	t.Helper()

	bookID, contactID := GivenUniqueID(t), GivenUniqueID(t)
	borrowed := FixtureBookBorrowed(GivenUniqueID(t), bookID, ownerID, contactID, "Médiathèque", nil, at)

	return borrowed, core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, false, at),
		FixtureContactAdded(contactID, ownerID, "Médiathèque", at),
		borrowed,
	}
}

func Test_Decide_Success_BookLeavesTheCollection(t *testing.T) {
	// arrange
	ownerID := GivenUniqueID(t)
	now := time.Now()
	borrowed, history := givenActiveBorrow(t, ownerID, now.Add(-time.Hour))

	// act
	result := returnborrowedbook.Decide(history, returnborrowedbook.BuildCommand(ownerID, uuid.MustParse(borrowed.BorrowID), nil, now))

	// assert
	require.NoError(t, result.HasError())
	assert.IsType(t, core.BorrowedBookReturned{}, result.Events[0])

	book, ok := core.ProjectLibrary(append(history, result.Events...)).Book(borrowed.BookID)
	require.True(t, ok)
	assert.False(t, core.IsVisibleInOwnerCollection(book))
}

func Test_Decide_BusinessErrors(t *testing.T) {
	ownerID := GivenUniqueID(t)
	now := time.Now()
	borrowed, history := givenActiveBorrow(t, ownerID, now.Add(-time.Hour))

	testCases := []struct {
		name           string
		history        core.DomainEvents
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "unknown",
			expectedKind:   core.ErrNotFound,
			expectedReason: "borrowed book not found",
		},
		{
			name:           "history cleared by purchase",
			history:        append(append(core.DomainEvents{}, history...), core.BuildBorrowHistoryCleared(borrowed.BookID, ownerID, now)),
			expectedKind:   core.ErrNotFound,
			expectedReason: "borrowed book not found",
		},
		{
			name:           "already returned",
			history:        append(append(core.DomainEvents{}, history...), FixtureBorrowReturned(borrowed, now)),
			expectedKind:   core.ErrConflict,
			expectedReason: "borrowed book is already returned",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := returnborrowedbook.Decide(tc.history, returnborrowedbook.BuildCommand(ownerID, uuid.MustParse(borrowed.BorrowID), nil, now))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

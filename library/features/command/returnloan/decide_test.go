package returnloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/returnloan"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func givenActiveLoan(t *testing.T, ownerID string, at time.Time) (core.BookLentToContact, core.DomainEvents) {
	t.Helper()

	bookID, contactID := GivenUniqueID(t), GivenUniqueID(t)
	lent := FixtureBookLent(GivenUniqueID(t), bookID, ownerID, contactID, nil, at)

	return lent, core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, at.Add(-time.Hour)),
		FixtureContactAdded(contactID, ownerID, "Jean", at.Add(-time.Hour)),
		lent,
	}
}

func Test_Decide_Success_ReturnDateDefaultsToNow(t *testing.T) {
	// arrange
	ownerID := GivenUniqueID(t)
	now := time.Now()
	lent, history := givenActiveLoan(t, ownerID, now.Add(-72*time.Hour))

	// act
	result := returnloan.Decide(history, returnloan.BuildCommand(ownerID, uuid.MustParse(lent.LoanID), nil, now))

	// assert
	require.NoError(t, result.HasError())
	returned, ok := result.Events[0].(core.LoanReturned)
	require.True(t, ok, "Expected LoanReturned event")
	assert.Equal(t, core.ToOccurredAt(now), returned.ReturnDate)
	assert.Equal(t, lent.BookID, returned.BookID)
}

func Test_Decide_Success_OverdueLoanCanBeReturned(t *testing.T) {
	// arrange
	ownerID := GivenUniqueID(t)
	now := time.Now()
	due := now.Add(-24 * time.Hour)
	lent, history := givenActiveLoan(t, ownerID, now.Add(-72*time.Hour))
	history[2] = FixtureBookLent(lent.LoanID, lent.BookID, ownerID, lent.ContactID, &due, lent.LoanDate)

	// act
	result := returnloan.Decide(history, returnloan.BuildCommand(ownerID, uuid.MustParse(lent.LoanID), nil, now))

	// assert
	require.NoError(t, result.HasError())

	book, _ := core.ProjectLibrary(append(history, result.Events...)).Book(lent.BookID)
	assert.Equal(t, core.CustodyReturned, book.Loans[0].StatusAt(now), "RETURNED never reports OVERDUE")
}

func Test_Decide_BusinessErrors(t *testing.T) {
	ownerID := GivenUniqueID(t)
	now := time.Now()
	lent, history := givenActiveLoan(t, ownerID, now.Add(-72*time.Hour))
	beforeLoan := now.Add(-96 * time.Hour)

	with := func(events ...core.DomainEvent) core.DomainEvents {
		return append(append(core.DomainEvents{}, history...), events...)
	}

	testCases := []struct {
		name           string
		history        core.DomainEvents
		ownerID        string
		returnDate     *time.Time
		expectedKind   error
		expectedReason string
	}{
		{
			name:           "loan of another owner",
			history:        history,
			ownerID:        GivenUniqueID(t),
			expectedKind:   core.ErrNotFound,
			expectedReason: "loan not found",
		},
		{
			name:           "book removed",
			history:        with(FixtureBookRemoved(lent.BookID, ownerID, now)),
			ownerID:        ownerID,
			expectedKind:   core.ErrNotFound,
			expectedReason: "loan not found",
		},
		{
			name:           "second return",
			history:        with(FixtureLoanReturned(lent, now.Add(-time.Hour))),
			ownerID:        ownerID,
			expectedKind:   core.ErrConflict,
			expectedReason: "loan is already returned",
		},
		{
			name:           "return before loan date",
			history:        history,
			ownerID:        ownerID,
			returnDate:     &beforeLoan,
			expectedKind:   core.ErrValidation,
			expectedReason: "return date is before loan date",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := returnloan.Decide(tc.history, returnloan.BuildCommand(tc.ownerID, uuid.MustParse(lent.LoanID), tc.returnDate, now))

			// assert
			assert.Empty(t, result.Events)
			assert.ErrorIs(t, result.HasError(), tc.expectedKind)
			assert.Equal(t, tc.expectedReason, core.ReasonOf(result.HasError()))
		})
	}
}

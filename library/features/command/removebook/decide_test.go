package removebook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/command/removebook"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Decide_Success_CascadesCustodyRecords(t *testing.T) {
	// arrange
	ownerID, bookID, contactID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	lent := FixtureBookLent(GivenUniqueID(t), bookID, ownerID, contactID, nil, now.Add(-time.Hour))
	history := core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, now.Add(-2*time.Hour)),
		FixtureContactAdded(contactID, ownerID, "Jean", now.Add(-2*time.Hour)),
		lent,
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(ownerID, uuid.MustParse(bookID), now))

	// assert
	require.NoError(t, result.HasError())

	library := core.ProjectLibrary(append(history, result.Events...))
	_, found := library.Book(bookID)
	assert.False(t, found)
	_, _, found = library.BookWithLoan(lent.LoanID)
	assert.False(t, found, "the loan disappears with its book")
}

func Test_Decide_Error_RemoveTwice(t *testing.T) {
	// arrange
	ownerID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	now := time.Now()
	history := core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, now.Add(-2*time.Hour)),
		FixtureBookRemoved(bookID, ownerID, now.Add(-time.Hour)),
	}

	// act
	result := removebook.Decide(history, removebook.BuildCommand(ownerID, uuid.MustParse(bookID), now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
	assert.Equal(t, "book not found", core.ReasonOf(result.HasError()))
}

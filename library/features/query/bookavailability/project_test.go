package bookavailability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/bookavailability"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_Project_OwnerSeesCounterpart(t *testing.T) {
	// arrange
	now := time.Now()
	ownerID, bookID, contactID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, now.Add(-2*time.Hour)),
		FixtureContactAdded(contactID, ownerID, "Marie", now.Add(-2*time.Hour)),
		FixtureBookLent(GivenUniqueID(t), bookID, ownerID, contactID, nil, now.Add(-time.Hour)),
	}

	// act
	result, err := bookavailability.Project(history, bookavailability.BuildQuery(ownerID, bookID, now), 3)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.AvailabilityLoanedToContact, result.Status)
	assert.Equal(t, core.CustodyActive, result.CustodyStatus)
	assert.Equal(t, "Marie", result.CounterpartName)
	assert.Equal(t, uint(3), result.GetSequenceNumber())
}

func Test_Project_OverdueIsDerivedOnRead(t *testing.T) {
	// arrange
	now := time.Now()
	due := now.Add(-time.Minute)
	ownerID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, now.Add(-48*time.Hour)),
		FixtureBookLent(GivenUniqueID(t), bookID, ownerID, GivenUniqueID(t), &due, now.Add(-24*time.Hour)),
	}

	// act
	result, err := bookavailability.Project(history, bookavailability.BuildQuery(ownerID, bookID, now), 2)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.CustodyOverdue, result.CustodyStatus)
}

func Test_Project_SharedViewerSeesStatusWithoutCounterpart(t *testing.T) {
	// arrange
	now := time.Now()
	ownerID, viewerID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	requested := FixtureLoanRequested(GivenUniqueID(t), bookID, ownerID, GivenUniqueID(t), now.Add(-time.Hour))
	history := append(
		core.DomainEvents{
			FixtureBookAdded(bookID, ownerID, true, now.Add(-2*time.Hour)),
			requested,
			FixtureLoanRequestAccepted(requested, nil, now.Add(-time.Minute)),
		},
		FixtureLinkedContact(GivenUniqueID(t), ownerID, viewerID, "viewer", true, now)...,
	)

	// act
	result, err := bookavailability.Project(history, bookavailability.BuildQuery(viewerID, bookID, now), 5)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.AvailabilityLentToMember, result.Status)
	assert.Empty(t, result.CounterpartName)
}

func Test_Project_NotFound(t *testing.T) {
	now := time.Now()
	ownerID, viewerID, bookID, hiddenID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	givenBackID := GivenUniqueID(t)
	givenBack := FixtureBookBorrowed(GivenUniqueID(t), givenBackID, ownerID, "", "Paul", nil, now)
	history := append(
		core.DomainEvents{
			FixtureBookAdded(bookID, ownerID, true, now),
			FixtureBookAdded(hiddenID, ownerID, false, now),
			FixtureBookAdded(givenBackID, ownerID, true, now),
			givenBack,
			FixtureBorrowReturned(givenBack, now),
		},
		FixtureLinkedContact(GivenUniqueID(t), ownerID, viewerID, "viewer", true, now)...,
	)

	testCases := []struct {
		name     string
		viewerID string
		bookID   string
	}{
		{name: "stranger", viewerID: GivenUniqueID(t), bookID: bookID},
		{name: "shared viewer on a non-lendable book", viewerID: viewerID, bookID: hiddenID},
		{name: "unknown book", viewerID: ownerID, bookID: GivenUniqueID(t)},
		{name: "shared viewer on a borrowed book given back to its source", viewerID: viewerID, bookID: givenBackID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := bookavailability.Project(history, bookavailability.BuildQuery(tc.viewerID, tc.bookID, now), 0)

			// assert
			assert.ErrorIs(t, err, core.ErrNotFound)
		})
	}
}

func Test_Project_OwnerStillSeesBorrowedBookGivenBack(t *testing.T) {
	// arrange
	now := time.Now()
	ownerID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	borrowed := FixtureBookBorrowed(GivenUniqueID(t), bookID, ownerID, "", "Paul", nil, now.Add(-2*time.Hour))
	history := core.DomainEvents{
		FixtureBookAdded(bookID, ownerID, true, now.Add(-2*time.Hour)),
		borrowed,
		FixtureBorrowReturned(borrowed, now.Add(-time.Hour)),
	}

	// act
	result, err := bookavailability.Project(history, bookavailability.BuildQuery(ownerID, bookID, now), 3)

	// assert
	require.NoError(t, err)
	assert.Equal(t, bookID, result.BookID)
}

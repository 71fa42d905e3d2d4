package ownerlibrary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/ownerlibrary"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_QueryHandler_Handle_MemberLoanShowsUsername(t *testing.T) {
	// arrange
	es := GivenEventStore(t)
	at := time.Now().Add(-time.Hour)
	ownerID, requesterID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	requested := FixtureLoanRequested(GivenUniqueID(t), bookID, ownerID, requesterID, at)
	GivenEvents(t, es,
		FixtureMemberRegistered(requesterID, "bob", at),
		FixtureBookAdded(bookID, ownerID, true, at),
		requested,
		FixtureLoanRequestAccepted(requested, nil, at),
	)

	// act
	result, err := ownerlibrary.NewQueryHandler(es).Handle(context.Background(), ownerlibrary.BuildQuery(ownerID, "", time.Now()))

	// assert
	require.NoError(t, err)
	require.Len(t, result.Books, 1)
	assert.Equal(t, core.AvailabilityLentToMember, result.Books[0].Availability.Status)
	assert.Equal(t, "bob", result.Books[0].Availability.CounterpartName)
	assert.Equal(t, 1, result.Statistics.LoanedOut)
}

func Test_QueryHandler_Handle_EmptyCollection(t *testing.T) {
	// act
	result, err := ownerlibrary.NewQueryHandler(GivenEventStore(t)).Handle(context.Background(), ownerlibrary.BuildQuery(GivenUniqueID(t), "", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Empty(t, result.Books)
	assert.NotNil(t, result.Books)
}

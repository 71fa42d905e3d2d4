package bookavailability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/features/query/bookavailability"
	. "github.com/llCelmarll/Bibliotheque2-sub000/testutil/fixtures" //nolint:revive
)

func Test_QueryHandler_Handle_RemovedBookIsNotFound(t *testing.T) {
	// arrange
	es := GivenEventStore(t)
	ownerID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	GivenEvents(t, es,
		FixtureBookAdded(bookID, ownerID, true, time.Now().Add(-time.Hour)),
		FixtureBookRemoved(bookID, ownerID, time.Now()),
	)

	// act
	_, err := bookavailability.NewQueryHandler(es).Handle(context.Background(), bookavailability.BuildQuery(ownerID, bookID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_QueryHandler_Handle_InPossession(t *testing.T) {
	// arrange
	es := GivenEventStore(t)
	ownerID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	GivenEvents(t, es, FixtureBookAdded(bookID, ownerID, true, time.Now().Add(-time.Hour)))

	// act
	result, err := bookavailability.NewQueryHandler(es).Handle(context.Background(), bookavailability.BuildQuery(ownerID, bookID, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.AvailabilityInPossession, result.Status)
	assert.Equal(t, uint(1), result.SequenceNumber)
}

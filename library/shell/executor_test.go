package shell_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/memengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

func givenMemoryStore(t *testing.T) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	return es
}

// registerOnce decides a MemberRegistered unless the member exists already.
func registerOnce(userID string, at time.Time) shell.DecideFunc {
	return func(history core.DomainEvents) core.DecisionResult {
		if _, ok := core.ProjectMembers(history).Get(userID); ok {
			return core.ErrorDecision(core.Conflict("RegisterMember", "member already registered"))
		}

		return core.SuccessDecision(core.BuildMemberRegistered(userID, "ada", "ada@example.org", at)).WithEntityID(userID)
	}
}

func Test_HandleWithRetry_AppendsDecidedEvents(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	userID := uuid.NewString()

	// act
	result, err := shell.HandleWithRetry(ctx, es, shell.PlanOf(core.MemberScope(userID), registerOnce(userID, time.Now())))

	// assert
	require.NoError(t, err)
	assert.Equal(t, userID, result.EntityID)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 1, result.RetryAttempts)

	history, maxSeq, err := shell.QueryHistory(ctx, es, core.MemberScope(userID))
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(1), maxSeq)
}

func Test_HandleWithRetry_RejectedDecisionWritesNothing(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	userID := uuid.NewString()
	plan := shell.PlanOf(core.MemberScope(userID), registerOnce(userID, time.Now()))
	_, err := shell.HandleWithRetry(ctx, es, plan)
	require.NoError(t, err)

	// act
	_, err = shell.HandleWithRetry(ctx, es, plan)

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.Equal(t, 1, es.Len())
}

func Test_HandleWithRetry_IdempotentDecision(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	decide := func(core.DomainEvents) core.DecisionResult { return core.IdempotentDecision().WithEntityID("same") }

	// act
	result, err := shell.HandleWithRetry(ctx, es, shell.PlanOf(core.AllMembersScope(), decide))

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, "same", result.EntityID)
	assert.Equal(t, 0, es.Len())
}

func Test_HandleWithRetry_PlanErrorIsReturnedUnchanged(t *testing.T) {
	// arrange
	rejection := core.Invalid("RegisterMember", "user id is required")

	// act
	_, err := shell.HandleWithRetry(context.Background(), givenMemoryStore(t), shell.RejectedPlan(rejection))

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.Equal(t, "RegisterMember: user id is required", err.Error())
}

func Test_HandleWithRetry_ConcurrentWritersOnOneBoundary_ExactlyOneWins(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	userID := uuid.NewString()
	workers := 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	// act
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = shell.HandleWithRetry(ctx, es, shell.PlanOf(core.MemberScope(userID), registerOnce(userID, time.Now())))
		}()
	}
	wg.Wait()

	// assert
	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, core.ErrConflict)
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, es.Len())
}

func Test_HandleWithRetry_ExhaustedRetriesAreConflicts(t *testing.T) {
	// arrange
	es := &alwaysConflictingStore{EventStore: givenMemoryStore(t)}
	userID := uuid.NewString()

	// act
	result, err := shell.HandleWithRetry(
		context.Background(),
		es,
		shell.PlanOf(core.MemberScope(userID), registerOnce(userID, time.Now())),
		shell.WithMaxAttempts(2),
		shell.WithBaseDelay(time.Millisecond),
	)

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.True(t, result.RetriesExhausted)
	assert.Equal(t, 2, result.RetryAttempts)
}

type alwaysConflictingStore struct {
	*memengine.EventStore
}

func (s *alwaysConflictingStore) Append(
	context.Context,
	eventstore.Filter,
	eventstore.MaxSequenceNumberUint,
	eventstore.StorableEvent,
	...eventstore.StorableEvent,
) error {

	return eventstore.ErrConcurrencyConflict
}

func Test_LocateBookOf_And_LocateBookOwner(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	bookID, ownerID, loanID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	now := time.Now()

	appendEvents(t, es,
		core.BuildBookAdded(uuid.MustParse(bookID), ownerID, core.BookFields{Title: "Dune"}, now),
		core.BuildBookLentToContact(uuid.MustParse(loanID), bookID, ownerID, uuid.NewString(), now, nil, "", now),
	)

	// act
	locatedBook, foundBook, err := shell.LocateBookOf(ctx, es, core.BookLentToContactEventType, core.KeyLoanID, loanID)
	require.NoError(t, err)
	locatedOwner, foundOwner, err := shell.LocateBookOwner(ctx, es, bookID)
	require.NoError(t, err)
	_, foundMissing, err := shell.LocateBookOf(ctx, es, core.BookLentToContactEventType, core.KeyLoanID, uuid.NewString())
	require.NoError(t, err)

	// assert
	assert.True(t, foundBook)
	assert.Equal(t, bookID, locatedBook)
	assert.True(t, foundOwner)
	assert.Equal(t, ownerID, locatedOwner)
	assert.False(t, foundMissing)
}

func Test_LocateBookOwner_RemovedBookIsNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenMemoryStore(t)
	bookID, ownerID := uuid.NewString(), uuid.NewString()
	appendEvents(t, es,
		core.BuildBookAdded(uuid.MustParse(bookID), ownerID, core.BookFields{Title: "Dune"}, time.Now()),
		core.BuildBookRemoved(bookID, ownerID, time.Now()),
	)

	// act
	_, found, err := shell.LocateBookOwner(ctx, es, bookID)

	// assert
	require.NoError(t, err)
	assert.False(t, found)
}

func appendEvents(t *testing.T, es shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	storableEvents, err := shell.StorableEventsFrom(events, uuid.NewString())
	require.NoError(t, err)

	_, maxSeq, err := es.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	require.NoError(t, es.Append(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent(), maxSeq, storableEvents[0], storableEvents[1:]...))
}

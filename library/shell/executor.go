package shell

import (
	"context"
	"errors"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// DecideFunc is a Decide function with its command already bound.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// DecisionPlan is one read-decide-append unit: the consistency boundary and the decision over it.
type DecisionPlan struct {
	Filter eventstore.Filter
	Decide DecideFunc
}

// PlanFunc builds the DecisionPlan for one attempt. Handlers that first have to locate
// the boundary (a book by loan id, an invitation's parties) do it here, so a retry locates again.
type PlanFunc func(ctx context.Context) (DecisionPlan, error)

// ReadDecideAppend queries the boundary with strong consistency, decides, and appends the decided events
// conditionally on the max sequence number that was read. A rejected or idempotent decision writes nothing.
func ReadDecideAppend(ctx context.Context, es EventStore, plan DecisionPlan) (core.DecisionResult, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := es.Query(ctx, plan.Filter)
	if err != nil {
		return core.DecisionResult{}, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return core.DecisionResult{}, err
	}

	result := plan.Decide(history)
	if err = result.HasError(); err != nil {
		return result, err
	}

	if !result.HasEventsToAppend() {
		return result, nil
	}

	toAppend, err := StorableEventsFrom(result.Events, CorrelationIDFrom(ctx))
	if err != nil {
		return core.DecisionResult{}, err
	}

	if err = es.Append(ctx, plan.Filter, maxSequenceNumber, toAppend[0], toAppend[1:]...); err != nil {
		return core.DecisionResult{}, err
	}

	return result, nil
}

// HandleWithRetry runs plan as a read-decide-append unit and retries it on concurrency conflicts.
// When all attempts lost the race, the error is also a core.ErrConflict: the command could not be
// applied against the current state.
func HandleWithRetry(ctx context.Context, es EventStore, plan PlanFunc, options ...RetryOption) (HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := RetryWithExponentialBackoff(
		ctx,
		func(ctx context.Context) error {
			decisionPlan, planErr := plan(ctx)
			if planErr != nil {
				return planErr
			}

			var decideErr error
			result, decideErr = ReadDecideAppend(ctx, es, decisionPlan)

			return decideErr
		},
		options...,
	)

	if err != nil {
		if retryMetrics.RetriesExhausted {
			err = errors.Join(core.ErrConflict, err)
		}

		return NewErrorResult(retryMetrics), err
	}

	if result.IsIdempotent() {
		return NewIdempotentResult(result.EntityID, retryMetrics), nil
	}

	return NewSuccessResult(result.EntityID, retryMetrics), nil
}

// PlanOf is a PlanFunc for a fixed boundary that needs no locating.
func PlanOf(filter eventstore.Filter, decide DecideFunc) PlanFunc {
	return func(context.Context) (DecisionPlan, error) {
		return DecisionPlan{Filter: filter, Decide: decide}, nil
	}
}

// RejectedPlan is a PlanFunc that fails with err without touching the store.
func RejectedPlan(err error) PlanFunc {
	return func(context.Context) (DecisionPlan, error) {
		return DecisionPlan{}, err
	}
}

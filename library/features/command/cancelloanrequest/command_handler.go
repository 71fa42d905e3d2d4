package cancelloanrequest

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// CommandHandler runs Query -> Decide -> Append for CancelLoanRequest with retry on concurrency conflicts.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command. The book holding the request is located first, it is the consistency
// boundary. The result's EntityID is the request id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	plan := func(ctx context.Context) (shell.DecisionPlan, error) {
		if err := validate(command); err != nil {
			return shell.DecisionPlan{}, err
		}

		bookID, found, err := shell.LocateBookOf(ctx, h.eventStore, core.LoanRequestedEventType, core.KeyRequestID, command.RequestID.String())
		if err != nil {
			return shell.DecisionPlan{}, err
		}

		if !found {
			return shell.DecisionPlan{}, core.NotFound(commandType, failureReasonNotFound)
		}

		return shell.DecisionPlan{
			Filter: BuildEventFilter(bookID),
			Decide: func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command)
			},
		}, nil
	}

	return shell.HandleWithRetry(ctx, h.eventStore, plan, h.retryOptions...)
}

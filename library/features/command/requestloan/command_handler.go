package requestloan

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// CommandHandler runs Query -> Decide -> Append for RequestLoan with retry on concurrency conflicts.
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

// Handle executes the command. The book's owner is located first to include their address book in
// the consistency boundary. The result's EntityID is the request id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	plan := func(ctx context.Context) (shell.DecisionPlan, error) {
		if err := validate(command); err != nil {
			return shell.DecisionPlan{}, err
		}

		bookID := command.BookID.String()

		ownerID, _, err := shell.LocateBookOwner(ctx, h.eventStore, bookID)
		if err != nil {
			return shell.DecisionPlan{}, err
		}

		return shell.DecisionPlan{
			Filter: BuildEventFilter(bookID, ownerID),
			Decide: func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command)
			},
		}, nil
	}

	return shell.HandleWithRetry(ctx, h.eventStore, plan, h.retryOptions...)
}

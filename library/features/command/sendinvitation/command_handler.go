package sendinvitation

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// CommandHandler runs Query -> Decide -> Append for SendInvitation with retry on concurrency conflicts.
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

// Handle executes the command. The result's EntityID is the invitation id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := validate(command); err != nil {
		return shell.HandleWithRetry(ctx, h.eventStore, shell.RejectedPlan(err), h.retryOptions...)
	}

	plan := shell.PlanOf(
		BuildEventFilter(command.SenderID, command.RecipientID),
		func(history core.DomainEvents) core.DecisionResult {
			return Decide(history, command)
		},
	)

	return shell.HandleWithRetry(ctx, h.eventStore, plan, h.retryOptions...)
}

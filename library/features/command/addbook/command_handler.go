package addbook

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

const (
	logMsgMetadataLookupFailed = "isbn metadata lookup failed"
)

// CommandHandler runs Query -> Decide -> Append for AddBook with retry on concurrency conflicts.
// The metadata lookup runs once, before the first attempt.
type CommandHandler struct {
	eventStore     shell.EventStore
	retryOptions   []shell.RetryOption
	metadataLookup MetadataLookup
	logger         shell.Logger
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithMetadataLookup enables filling empty fields from the ISBN.
func WithMetadataLookup(lookup MetadataLookup) Option {
	return func(h *CommandHandler) {
		h.metadataLookup = lookup
	}
}

// WithLogger sets the logger for failed metadata lookups.
func WithLogger(logger shell.Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
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

// Handle executes the command. The result's EntityID is the id of the new or re-entered book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	command = h.enrich(ctx, command)

	plan := shell.PlanOf(BuildEventFilter(command.OwnerID), func(history core.DomainEvents) core.DecisionResult {
		return Decide(history, command)
	})

	if err := validate(command); err != nil {
		plan = shell.RejectedPlan(err)
	}

	return shell.HandleWithRetry(ctx, h.eventStore, plan, h.retryOptions...)
}

func (h CommandHandler) enrich(ctx context.Context, command Command) Command {
	if h.metadataLookup == nil || !command.NeedsMetadata() {
		return command
	}

	metadata, err := h.metadataLookup.LookupISBN(ctx, command.Fields.ISBN)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn(logMsgMetadataLookupFailed, "isbn", command.Fields.ISBN, shell.LogAttrError, err.Error())
		}

		return command
	}

	return command.WithMetadata(metadata)
}

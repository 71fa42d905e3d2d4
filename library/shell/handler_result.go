package shell

import "time"

// HandlerResult represents the outcome of a command handler execution.
// It captures both business outcomes (idempotency, the settled entity) and execution metadata (retry information)
// without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// EntityID is the id of the entity the command created or settled on, if it has one.
	EntityID string

	// Idempotent indicates whether the operation was idempotent (no state change needed).
	Idempotent bool

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the type of the final error encountered during retries.
	// Values: "none", "concurrency_conflict", "context_canceled", "context_deadline_exceeded", "other"
	LastErrorType string

	// RetriesExhausted indicates whether max retry attempts were reached with a retryable error.
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for successful operations (non-idempotent).
func NewSuccessResult(entityID string, retryMetrics RetryMetrics) HandlerResult {
	return newResult(entityID, false, retryMetrics)
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult(entityID string, retryMetrics RetryMetrics) HandlerResult {
	return newResult(entityID, true, retryMetrics)
}

// NewErrorResult creates a HandlerResult for failed operations that still reports retry metadata.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult("", false, retryMetrics)
}

func newResult(entityID string, idempotent bool, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		EntityID:         entityID,
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

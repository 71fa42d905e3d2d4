package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// The error taxonomy. Every rejected decision carries exactly one of these kinds.
var (
	// ErrNotFound means the referenced entity does not exist or is outside the caller's scope.
	// Ownership-scoped lookups use it instead of ErrForbidden to not leak existence.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the entity is visible, but the caller is not the actor for the transition.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means an invariant would be violated or the source state does not allow the transition.
	ErrConflict = errors.New("conflict")

	// ErrValidation means the input is malformed or a correlated field is missing.
	ErrValidation = errors.New("validation failed")
)

// DecisionError is the error a Decide function rejects a command with.
type DecisionError struct {
	Operation string
	Kind      error
	Reason    string
}

func (e *DecisionError) Error() string {
	return e.Operation + ": " + e.Reason
}

// Unwrap makes errors.Is(err, ErrConflict) and friends work.
func (e *DecisionError) Unwrap() error {
	return e.Kind
}

func NotFound(operation string, reason string) *DecisionError {
	return &DecisionError{Operation: operation, Kind: ErrNotFound, Reason: reason}
}

func Forbidden(operation string, reason string) *DecisionError {
	return &DecisionError{Operation: operation, Kind: ErrForbidden, Reason: reason}
}

func Conflict(operation string, reason string) *DecisionError {
	return &DecisionError{Operation: operation, Kind: ErrConflict, Reason: reason}
}

func Invalid(operation string, reason string) *DecisionError {
	return &DecisionError{Operation: operation, Kind: ErrValidation, Reason: reason}
}

// ReasonOf returns the bare reason of a DecisionError anywhere in err's chain, or "".
func ReasonOf(err error) string {
	var decisionErr *DecisionError
	if errors.As(err, &decisionErr) {
		return decisionErr.Reason
	}

	return ""
}

// RequireID rejects an empty identifier before it can widen a consistency boundary.
func RequireID(operation string, field string, id string) error {
	if strings.TrimSpace(id) == "" {
		return Invalid(operation, field+" is required")
	}

	return nil
}

// RequireUUID is RequireID for generated entity ids.
func RequireUUID(operation string, field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return Invalid(operation, field+" is required")
	}

	return nil
}

// ParseID turns an entity id received as text into a uuid. An empty id yields uuid.Nil,
// which RequireUUID rejects; anything else that is not a uuid is invalid.
func ParseID(operation string, field string, id string) (uuid.UUID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.Nil, nil
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, Invalid(operation, field+" is malformed")
	}

	return parsed, nil
}

package core

import (
	"strings"
	"time"
)

// Instead of implementing full value objects, alias types and helper functions are used here.

type (
	EventTypeString      = string
	UserIDString         = string
	BookIDString         = string
	ContactIDString      = string
	InvitationIDString   = string
	LoanIDString         = string
	BorrowIDString       = string
	RequestIDString      = string
	OccurredAtTS         = time.Time
	OptionalTS           = *time.Time
	NormalizedNameString = string
)

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// ToOptionalTS normalizes an optional time the same way as ToOccurredAt.
func ToOptionalTS(t *time.Time) OptionalTS {
	if t == nil {
		return nil
	}

	normalized := ToOccurredAt(*t)

	return &normalized
}

// TimeOrDefault returns the normalized t, or fallback when t is nil.
func TimeOrDefault(t *time.Time, fallback time.Time) OccurredAtTS {
	if t == nil {
		return ToOccurredAt(fallback)
	}

	return ToOccurredAt(*t)
}

// NormalizeName trims, collapses inner whitespace and case-folds a name.
// Contact names are unique per owner under this normalization.
func NormalizeName(name string) NormalizedNameString {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

func Test_DeriveCustodyStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	testCases := []struct {
		description string
		returnDate  *time.Time
		dueDate     *time.Time
		expected    core.CustodyStatus
	}{
		{description: "no due date", expected: core.CustodyActive},
		{description: "due in the future", dueDate: &tomorrow, expected: core.CustodyActive},
		{description: "due exactly now", dueDate: &now, expected: core.CustodyActive},
		{description: "due in the past", dueDate: &yesterday, expected: core.CustodyOverdue},
		{description: "returned late is still returned", returnDate: &now, dueDate: &yesterday, expected: core.CustodyReturned},
		{description: "returned without due date", returnDate: &now, expected: core.CustodyReturned},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			status := core.DeriveCustodyStatus(tc.returnDate, tc.dueDate, now)

			// assert
			assert.Equal(t, tc.expected, status)
			assert.True(t, status.IsValid())
		})
	}
}

func Test_DeriveCustodyStatus_FlipsToOverdueWithTheClock(t *testing.T) {
	// arrange
	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// act + assert
	assert.Equal(t, core.CustodyActive, core.DeriveCustodyStatus(nil, &dueDate, dueDate.Add(-time.Second)))
	assert.Equal(t, core.CustodyOverdue, core.DeriveCustodyStatus(nil, &dueDate, dueDate.Add(time.Second)))
}

func Test_NormalizeName(t *testing.T) {
	assert.Equal(t, "ada lovelace", core.NormalizeName("  Ada   LOVELACE "))
	assert.Equal(t, core.NormalizeName("Ada\tLovelace"), core.NormalizeName("ada lovelace"))
	assert.Empty(t, core.NormalizeName("   "))
}

func Test_CustodyStatus_IsValid_RejectsUnknown(t *testing.T) {
	assert.False(t, core.CustodyStatus("LOST").IsValid())
}

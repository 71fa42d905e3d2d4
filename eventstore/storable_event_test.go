package eventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"key": "value"}`)
	validMetadataJSON := []byte(`{"meta": "data"}`)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{"invalid payload JSON", []byte(`{"invalid": json}`), validMetadataJSON, ErrInvalidPayloadJSON},
		{"invalid metadata JSON", validPayloadJSON, []byte(`{"invalid": json}`), ErrInvalidMetadataJSON},
		{"empty payload JSON", []byte(``), validMetadataJSON, ErrInvalidPayloadJSON},
		{"empty metadata JSON", validPayloadJSON, []byte(``), ErrInvalidMetadataJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableEvent("TestEvent", validTime, tt.payloadJSON, tt.metadataJSON)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	occurredAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	event, err := BuildStorableEventWithEmptyMetadata("BookAdded", occurredAt, []byte(`{"BookID":"b-1"}`))

	assert.NoError(t, err)
	assert.Equal(t, "BookAdded", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.JSONEq(t, `{}`, string(event.MetadataJSON))
	assert.Equal(t, uint(7), event.WithSequenceNumber(7).SequenceNumber)
}

package postgresengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS %[1]s (
	sequence_number BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMPTZ NOT NULL,
	event_type TEXT NOT NULL,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS %[1]s_event_type_idx ON %[1]s (event_type);
CREATE INDEX IF NOT EXISTS %[1]s_payload_idx ON %[1]s USING GIN (payload jsonb_path_ops);
`

// CreateSchema creates the events table and its indexes if they do not exist yet.
func (es EventStore) CreateSchema(ctx context.Context) error {
	if err := es.db.Exec(ctx, es.schemaDDL()); err != nil {
		es.logError(ctx, "failed to create schema", err)
		return errors.Join(eventstore.ErrCreatingSchemaFailed, err)
	}

	es.logOperation(ctx, "schema ensured", "table", es.eventTableName)

	return nil
}

func (es EventStore) schemaDDL() string {
	return fmt.Sprintf(schemaTemplate, es.eventTableName)
}

package borrowedbooks

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// QueryHandler orchestrates the query processing workflow: Query -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowedBooks, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	history, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.OwnerID))
	if err != nil {
		return BorrowedBooks{}, err
	}

	return Project(history, query, maxSequenceNumber), nil
}

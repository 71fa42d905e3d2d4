package bookavailability

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// QueryHandler orchestrates the query processing workflow: Locate -> Query -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle locates the owner of the book first to include their address book in the read.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookAvailability, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	ownerID, found, err := shell.LocateBookOwner(ctx, h.eventStore, query.BookID)
	if err != nil {
		return BookAvailability{}, err
	}

	if !found {
		return BookAvailability{}, core.NotFound(queryType, failureReasonNotFound)
	}

	history, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.BookID, ownerID))
	if err != nil {
		return BookAvailability{}, err
	}

	return Project(history, query, maxSequenceNumber)
}

package loanrequests

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// QueryHandler orchestrates the query processing workflow: Query requests -> Query books -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle reads the user's requests first to find the books they refer to, then projects over those books.
func (h QueryHandler) Handle(ctx context.Context, query Query) (LoanRequests, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	requests, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildRequestsFilter(query.UserID))
	if err != nil {
		return LoanRequests{}, err
	}

	bookIDs := ReferencedBooks(requests)
	if len(bookIDs) == 0 {
		return Project(nil, query, maxSequenceNumber), nil
	}

	history, maxSequenceNumber, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(bookIDs[0], bookIDs[1:]...))
	if err != nil {
		return LoanRequests{}, err
	}

	return Project(history, query, maxSequenceNumber), nil
}

package bookavailability

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "BookAvailability"
)

// Query asks for the availability of BookID as seen by ViewerID at Now.
type Query struct {
	ViewerID core.UserIDString
	BookID   core.BookIDString
	Now      time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(viewerID core.UserIDString, bookID core.BookIDString, now time.Time) Query {
	return Query{
		ViewerID: viewerID,
		BookID:   bookID,
		Now:      now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

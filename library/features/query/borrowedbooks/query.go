package borrowedbooks

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "BorrowedBooks"
)

// Query asks for the borrowed books of OwnerID at Now. An empty Status lists every record.
type Query struct {
	OwnerID core.UserIDString
	Status  core.CustodyStatus
	Now     time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(ownerID core.UserIDString, status core.CustodyStatus, now time.Time) Query {
	return Query{
		OwnerID: ownerID,
		Status:  status,
		Now:     now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

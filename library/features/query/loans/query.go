package loans

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "Loans"
)

// Query asks for the loans of OwnerID at Now. An empty Status lists every loan.
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

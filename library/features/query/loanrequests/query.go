package loanrequests

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "LoanRequests"
)

// Direction selects which side of the requests is listed.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Query asks for the loan requests of UserID in Direction.
type Query struct {
	UserID    core.UserIDString
	Direction Direction
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(userID core.UserIDString, direction Direction) Query {
	return Query{
		UserID:    userID,
		Direction: direction,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

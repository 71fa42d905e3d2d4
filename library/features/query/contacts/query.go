package contacts

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "Contacts"
)

// Query asks for the contacts of OwnerID.
type Query struct {
	OwnerID core.UserIDString
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(ownerID core.UserIDString) Query {
	return Query{
		OwnerID: ownerID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

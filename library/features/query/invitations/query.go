package invitations

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "Invitations"
)

// Box selects which invitations are listed.
type Box string

const (
	// Received lists the PENDING invitations the member received.
	Received Box = "received"

	// Sent lists the member's sent invitations that were neither declined nor cancelled.
	Sent Box = "sent"
)

// Query asks for the invitations of UserID in Box.
type Query struct {
	UserID core.UserIDString
	Box    Box
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(userID core.UserIDString, box Box) Query {
	return Query{
		UserID: userID,
		Box:    box,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

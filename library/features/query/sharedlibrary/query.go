package sharedlibrary

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "SharedLibrary"
)

// Query asks for the library of OwnerID as seen by ViewerID at Now.
type Query struct {
	ViewerID core.UserIDString
	OwnerID  core.UserIDString
	Now      time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(viewerID core.UserIDString, ownerID core.UserIDString, now time.Time) Query {
	return Query{
		ViewerID: viewerID,
		OwnerID:  ownerID,
		Now:      now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

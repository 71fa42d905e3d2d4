package ownerlibrary

import (
	"strings"
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	queryType = "OwnerLibrary"
)

// Query asks for the collection of OwnerID at Now. Search is matched case-insensitively against
// title, author, ISBN and barcode; empty means no search.
type Query struct {
	OwnerID core.UserIDString
	Search  string
	Now     time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(ownerID core.UserIDString, search string, now time.Time) Query {
	return Query{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(search),
		Now:     now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

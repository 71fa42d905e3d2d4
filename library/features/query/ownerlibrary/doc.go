// Package ownerlibrary implements the Owner Library query use case: the owner's primary collection
// with the availability of every book, an optional search and collection statistics.
//
// Books that were borrowed and given back to their source are hidden, they never belonged to the
// collection. The statistics are computed over the same visible set as the listing.
package ownerlibrary

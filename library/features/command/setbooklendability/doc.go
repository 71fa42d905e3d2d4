// Package setbooklendability implements the Set Book Lendability use case. Only lendable books are
// shown to members the owner shares their library with, and only those can be requested.
package setbooklendability

// Package addcontact implements the Add Contact use case: an owner adds a person to their address book.
package addcontact

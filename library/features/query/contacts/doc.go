// Package contacts implements the Contacts query use case: an owner's address book with the linked
// member's username and the library sharing flag.
package contacts

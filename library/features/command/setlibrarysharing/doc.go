// Package setlibrarysharing implements the Set Library Sharing use case.
//
// Sharing lets the member a contact is linked to browse the owner's lendable books and request them.
// It can only be turned on for linked contacts.
package setlibrarysharing

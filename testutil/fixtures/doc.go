// Package fixtures provides test fixtures for the bibliotheque tests: unique ids, an in-memory
// event store, and ready-made domain events that put a book, a contact, a member or an invitation
// into a known state.
//
// The Fixture functions take entity ids as the uuid strings GivenUniqueID returns and panic on anything else.
package fixtures

package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

func Test_ResolveAvailability_InPossession_WhenNoCustodyRecord(t *testing.T) {
	// arrange
	bookID, ownerID := newID(), newID()
	book, ok := projectBook(bookID, givenBookAdded(bookID, ownerID, true, testNow.Add(-time.Hour)))
	require.True(t, ok)

	// act
	availability := core.ResolveAvailability(book, testNow)

	// assert
	assert.Equal(t, core.AvailabilityInPossession, availability.Status)
	assert.False(t, availability.IsOut())
}

func Test_ResolveAvailability_ActiveLoanWinsOverEverything(t *testing.T) {
	// arrange
	bookID, ownerID, contactID, loanID := newID(), newID(), newID(), newID()
	requested := givenLoanRequested(newID(), bookID, ownerID, newID(), testNow.Add(-4*time.Hour))

	// Such a history cannot be produced through the deciders, the resolver still has to be deterministic.
	book, ok := projectBook(bookID,
		givenBookAdded(bookID, ownerID, true, testNow.Add(-5*time.Hour)),
		givenBookBorrowed(newID(), bookID, ownerID, testNow.Add(-5*time.Hour)),
		requested,
		givenLoanRequestAccepted(requested, nil, testNow.Add(-3*time.Hour)),
		givenBookLent(loanID, bookID, ownerID, contactID, nil, testNow.Add(-2*time.Hour)),
	)
	require.True(t, ok)

	// act
	availability := core.ResolveAvailability(book, testNow)

	// assert
	assert.Equal(t, core.AvailabilityLoanedToContact, availability.Status)
	assert.Equal(t, loanID, availability.LoanID)
	assert.Equal(t, contactID, availability.ContactID)
	assert.True(t, availability.IsOut())
}

func Test_ResolveAvailability_AcceptedRequestCountsAsLentToMember(t *testing.T) {
	// arrange
	bookID, ownerID, requesterID := newID(), newID(), newID()
	dueDate := testNow.Add(-time.Hour)
	requested := givenLoanRequested(newID(), bookID, ownerID, requesterID, testNow.Add(-4*time.Hour))

	book, ok := projectBook(bookID,
		givenBookAdded(bookID, ownerID, true, testNow.Add(-5*time.Hour)),
		requested,
		givenLoanRequestAccepted(requested, &dueDate, testNow.Add(-3*time.Hour)),
	)
	require.True(t, ok)

	// act
	availability := core.ResolveAvailability(book, testNow)

	// assert
	assert.Equal(t, core.AvailabilityLentToMember, availability.Status)
	assert.Equal(t, requested.RequestID, availability.RequestID)
	assert.Equal(t, requesterID, availability.MemberID)
	assert.Equal(t, core.CustodyOverdue, availability.CustodyStatus)
}

func Test_ResolveAvailability_ActiveBorrow(t *testing.T) {
	// arrange
	bookID, ownerID, borrowID := newID(), newID(), newID()

	book, ok := projectBook(bookID,
		givenBookAdded(bookID, ownerID, false, testNow.Add(-5*time.Hour)),
		givenBookBorrowed(borrowID, bookID, ownerID, testNow.Add(-4*time.Hour)),
	)
	require.True(t, ok)

	// act
	availability := core.ResolveAvailability(book, testNow)

	// assert
	assert.Equal(t, core.AvailabilityBorrowedFromContact, availability.Status)
	assert.Equal(t, borrowID, availability.BorrowID)
	assert.Equal(t, "City Library", availability.SourceName)
	assert.False(t, availability.IsOut())
}

func Test_ResolveAvailability_ReturnedLoanMeansInPossession(t *testing.T) {
	// arrange
	bookID, ownerID, loanID := newID(), newID(), newID()

	book, ok := projectBook(bookID,
		givenBookAdded(bookID, ownerID, true, testNow.Add(-5*time.Hour)),
		givenBookLent(loanID, bookID, ownerID, newID(), nil, testNow.Add(-4*time.Hour)),
		core.BuildLoanReturned(core.LoanRecord{LoanID: loanID, BookID: bookID, OwnerID: ownerID}, testNow, testNow),
	)
	require.True(t, ok)

	// act
	availability := core.ResolveAvailability(book, testNow)

	// assert
	assert.Equal(t, core.AvailabilityInPossession, availability.Status)
}

func Test_IsVisibleInOwnerCollection(t *testing.T) {
	bookID, ownerID, borrowID := newID(), newID(), newID()
	added := givenBookAdded(bookID, ownerID, true, testNow.Add(-5*time.Hour))
	borrowed := givenBookBorrowed(borrowID, bookID, ownerID, testNow.Add(-4*time.Hour))
	returned := givenBorrowReturned(borrowID, bookID, ownerID, testNow.Add(-3*time.Hour))
	borrowedAgain := givenBookBorrowed(newID(), bookID, ownerID, testNow.Add(-2*time.Hour))

	testCases := []struct {
		description string
		history     core.DomainEvents
		visible     bool
	}{
		{description: "owned book without borrow records", history: core.DomainEvents{added}, visible: true},
		{description: "currently borrowed book", history: core.DomainEvents{added, borrowed}, visible: true},
		{description: "borrowed and given back", history: core.DomainEvents{added, borrowed, returned}, visible: false},
		{description: "borrowed again after giving it back", history: core.DomainEvents{added, borrowed, returned, borrowedAgain}, visible: true},
		{
			description: "bought after borrowing",
			history:     core.DomainEvents{added, borrowed, returned, core.BuildBorrowHistoryCleared(bookID, ownerID, testNow)},
			visible:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			book, ok := core.ProjectLibrary(tc.history).Book(bookID)
			require.True(t, ok)

			// act + assert
			assert.Equal(t, tc.visible, core.IsVisibleInOwnerCollection(book))
		})
	}
}

func Test_Availability_CounterpartName(t *testing.T) {
	// arrange
	ownerID, contactID, memberID := newID(), newID(), newID()
	history := core.DomainEvents{
		givenContactAdded(contactID, ownerID, "Marie", testNow),
		core.BuildMemberRegistered(memberID, "bob", "bob@example.org", testNow),
	}
	contacts, members := core.ProjectContactBook(history), core.ProjectMembers(history)

	testCases := []struct {
		name         string
		availability core.Availability
		expected     string
	}{
		{"loaned to contact", core.Availability{Status: core.AvailabilityLoanedToContact, ContactID: contactID}, "Marie"},
		{"lent to member", core.Availability{Status: core.AvailabilityLentToMember, MemberID: memberID}, "bob"},
		{"borrowed from unlinked source", core.Availability{Status: core.AvailabilityBorrowedFromContact, SourceName: "City Library"}, "City Library"},
		{"in possession", core.Availability{Status: core.AvailabilityInPossession}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act / assert
			assert.Equal(t, tc.expected, tc.availability.CounterpartName(contacts, members))
		})
	}
}

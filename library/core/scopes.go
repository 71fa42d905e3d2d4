package core

import (
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

// Payload keys used in consistency boundaries.
const (
	KeyUserID       = "UserID"
	KeyBookID       = "BookID"
	KeyOwnerID      = "OwnerID"
	KeyLenderID     = "LenderID"
	KeyRequesterID  = "RequesterID"
	KeyContactID    = "ContactID"
	KeyLoanID       = "LoanID"
	KeyBorrowID     = "BorrowID"
	KeyRequestID    = "RequestID"
	KeyInvitationID = "InvitationID"
	KeySenderID     = "SenderID"
	KeyRecipientID  = "RecipientID"
)

var (
	// BookEventTypes carry BookID and OwnerID.
	BookEventTypes = []EventTypeString{
		BookAddedEventType,
		BookLendabilityChangedEventType,
		BookRemovedEventType,
		BookLentToContactEventType,
		LoanReturnedEventType,
		BookBorrowedFromContactEventType,
		BorrowedBookReturnedEventType,
		BorrowHistoryClearedEventType,
	}

	// LoanRequestEventTypes carry BookID, LenderID and RequesterID.
	LoanRequestEventTypes = []EventTypeString{
		LoanRequestedEventType,
		LoanRequestAcceptedEventType,
		LoanRequestDeclinedEventType,
		LoanRequestCancelledEventType,
		LoanRequestReturnedEventType,
	}

	// ContactEventTypes carry ContactID and OwnerID.
	ContactEventTypes = []EventTypeString{
		ContactAddedEventType,
		ContactLinkedEventType,
		LibrarySharingChangedEventType,
	}

	// InvitationEventTypes carry InvitationID, SenderID and RecipientID.
	InvitationEventTypes = []EventTypeString{
		InvitationSentEventType,
		InvitationAcceptedEventType,
		InvitationDeclinedEventType,
		InvitationCancelledEventType,
	}
)

func matchingAnyOf(eventTypes []EventTypeString) eventstore.FilterItemBuilderLackingPredicates {
	return eventstore.BuildEventFilter().Matching().AnyEventTypeOf(eventTypes[0], eventTypes[1:]...)
}

func predicates(key string, values []string) (eventstore.FilterPredicate, []eventstore.FilterPredicate) {
	rest := make([]eventstore.FilterPredicate, 0, len(values))
	for _, v := range values[1:] {
		rest = append(rest, eventstore.P(key, v))
	}

	return eventstore.P(key, values[0]), rest
}

// BookScope is everything that decides about one book: the book itself, its loans,
// its borrow records and its loan requests.
func BookScope(bookID BookIDString) eventstore.Filter {
	return BooksScope(bookID)
}

// BooksScope is BookScope for several books at once.
func BooksScope(bookID BookIDString, bookIDs ...BookIDString) eventstore.Filter {
	first, rest := predicates(KeyBookID, append([]string{bookID}, bookIDs...))

	return matchingAnyOf(append(append([]EventTypeString{}, BookEventTypes...), LoanRequestEventTypes...)).
		AndAnyPredicateOf(first, rest...).
		Finalize()
}

// OwnerContactsScope is the address book of one or more owners.
func OwnerContactsScope(ownerID UserIDString, ownerIDs ...UserIDString) eventstore.Filter {
	first, rest := predicates(KeyOwnerID, append([]string{ownerID}, ownerIDs...))

	return matchingAnyOf(ContactEventTypes).AndAnyPredicateOf(first, rest...).Finalize()
}

// OwnerLibraryScope is the whole collection of an owner: their books with all custody records,
// the loan requests they received, and their contacts.
func OwnerLibraryScope(ownerID UserIDString) eventstore.Filter {
	books := matchingAnyOf(BookEventTypes).AndAnyPredicateOf(eventstore.P(KeyOwnerID, ownerID)).Finalize()
	requests := matchingAnyOf(LoanRequestEventTypes).AndAnyPredicateOf(eventstore.P(KeyLenderID, ownerID)).Finalize()

	return eventstore.Union(books, requests, OwnerContactsScope(ownerID))
}

// MemberScope is the registration of one or more members.
func MemberScope(userID UserIDString, userIDs ...UserIDString) eventstore.Filter {
	first, rest := predicates(KeyUserID, append([]string{userID}, userIDs...))

	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(MemberRegisteredEventType).
		AndAnyPredicateOf(first, rest...).
		Finalize()
}

// AllMembersScope is the whole member directory.
func AllMembersScope() eventstore.Filter {
	return eventstore.BuildEventFilter().Matching().AnyEventTypeOf(MemberRegisteredEventType).Finalize()
}

// InvitationScope is the lifecycle of one invitation.
func InvitationScope(invitationID InvitationIDString) eventstore.Filter {
	return matchingAnyOf(InvitationEventTypes).AndAnyPredicateOf(eventstore.P(KeyInvitationID, invitationID)).Finalize()
}

// InvitationsBetweenScope is every invitation exchanged between a and b, in either direction.
func InvitationsBetweenScope(a UserIDString, b UserIDString) eventstore.Filter {
	return matchingAnyOf(InvitationEventTypes).
		AndAllPredicatesOf(eventstore.P(KeySenderID, a), eventstore.P(KeyRecipientID, b)).
		OrMatching().
		AnyEventTypeOf(InvitationEventTypes[0], InvitationEventTypes[1:]...).
		AndAllPredicatesOf(eventstore.P(KeySenderID, b), eventstore.P(KeyRecipientID, a)).
		Finalize()
}

// InvitationsOfScope is every invitation userID sent or received.
func InvitationsOfScope(userID UserIDString) eventstore.Filter {
	return matchingAnyOf(InvitationEventTypes).
		AndAnyPredicateOf(eventstore.P(KeySenderID, userID), eventstore.P(KeyRecipientID, userID)).
		Finalize()
}

// LoanRequestsOfScope is every loan request userID sent or received.
func LoanRequestsOfScope(userID UserIDString) eventstore.Filter {
	return matchingAnyOf(LoanRequestEventTypes).
		AndAnyPredicateOf(eventstore.P(KeyLenderID, userID), eventstore.P(KeyRequesterID, userID)).
		Finalize()
}

// SocialGraphScope is what decides about the link between a and b: both members,
// both address books and the invitations between them.
func SocialGraphScope(a UserIDString, b UserIDString) eventstore.Filter {
	return eventstore.Union(MemberScope(a, b), OwnerContactsScope(a, b), InvitationsBetweenScope(a, b))
}

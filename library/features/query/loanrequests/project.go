package loanrequests

import (
	"slices"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// Project lists the requests in the queried direction, newest first.
//
// Query Logic:
//
//	GIVEN: the books the user's requests refer to, with all their requests, and the member directory
//	WHEN: LoanRequests is queried
//	THEN: incoming lists requests where the user is the lender, outgoing where they are the requester
//	EXCLUDES: requests of removed books
//	INCLUDES: the number of PENDING requests the user received, whatever the direction
func Project(history core.DomainEvents, query Query, maxSequenceNumber uint) LoanRequests {
	members := core.ProjectMembers(history)

	result := LoanRequests{
		Requests:       make([]RequestInfo, 0),
		SequenceNumber: maxSequenceNumber,
	}

	for _, book := range core.ProjectLibrary(history).Books() {
		for _, request := range book.Requests {
			if request.LenderID == query.UserID && request.Status == core.RequestPending {
				result.PendingIncomingCount++
			}

			if !inDirection(request, query) {
				continue
			}

			result.Requests = append(result.Requests, RequestInfo{
				RequestID:         request.RequestID,
				BookID:            book.BookID,
				BookTitle:         book.Title,
				LenderID:          request.LenderID,
				LenderUsername:    members.UsernameOf(request.LenderID),
				RequesterID:       request.RequesterID,
				RequesterUsername: members.UsernameOf(request.RequesterID),
				Status:            request.Status,
				Message:           request.Message,
				ResponseMessage:   request.ResponseMessage,
				DueDate:           request.DueDate,
				RequestedAt:       request.RequestedAt,
				RespondedAt:       request.RespondedAt,
				ReturnDate:        request.ReturnDate,
			})
		}
	}

	slices.SortStableFunc(result.Requests, func(a, b RequestInfo) int {
		return b.RequestedAt.Compare(a.RequestedAt)
	})

	result.Count = len(result.Requests)

	return result
}

func inDirection(request core.RequestRecord, query Query) bool {
	if query.Direction == Outgoing {
		return request.RequesterID == query.UserID
	}

	return request.LenderID == query.UserID
}

// BuildRequestsFilter is the first read: every request the user sent or received.
func BuildRequestsFilter(userID core.UserIDString) eventstore.Filter {
	return core.LoanRequestsOfScope(userID)
}

// BuildEventFilter is the second read: the referenced books with all their records and the member directory.
func BuildEventFilter(bookID core.BookIDString, bookIDs ...core.BookIDString) eventstore.Filter {
	return eventstore.Union(core.BooksScope(bookID, bookIDs...), core.AllMembersScope())
}

// ReferencedBooks returns the distinct book ids of the requests in history, in first-seen order.
func ReferencedBooks(history core.DomainEvents) []core.BookIDString {
	bookIDs := make([]core.BookIDString, 0)

	for _, event := range history {
		if e, ok := event.(core.LoanRequested); ok && !slices.Contains(bookIDs, e.BookID) {
			bookIDs = append(bookIDs, e.BookID)
		}
	}

	return bookIDs
}

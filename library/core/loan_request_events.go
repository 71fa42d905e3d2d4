package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	LoanRequestedEventType        = "LoanRequested"
	LoanRequestAcceptedEventType  = "LoanRequestAccepted"
	LoanRequestDeclinedEventType  = "LoanRequestDeclined"
	LoanRequestCancelledEventType = "LoanRequestCancelled"
	LoanRequestReturnedEventType  = "LoanRequestReturned"
)

// LoanRequested opens a negotiation: the requester asks the lender for one of the lender's books.
type LoanRequested struct {
	EventType   EventTypeString
	RequestID   RequestIDString
	BookID      BookIDString
	LenderID    UserIDString
	RequesterID UserIDString
	Message     string
	DueDate     OptionalTS `json:",omitempty"`
	OccurredAt  OccurredAtTS
}

// BuildLoanRequested creates a new LoanRequested event.
func BuildLoanRequested(
	requestID uuid.UUID,
	bookID BookIDString,
	lenderID UserIDString,
	requesterID UserIDString,
	message string,
	dueDate *time.Time,
	occurredAt time.Time,
) LoanRequested {

	return LoanRequested{
		EventType:   LoanRequestedEventType,
		RequestID:   requestID.String(),
		BookID:      bookID,
		LenderID:    lenderID,
		RequesterID: requesterID,
		Message:     message,
		DueDate:     ToOptionalTS(dueDate),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e LoanRequested) IsEventType() string {
	return LoanRequestedEventType
}

func (e LoanRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LoanRequestAccepted hands the book to the requester. DueDate, when set, overrides the requested one.
type LoanRequestAccepted struct {
	EventType       EventTypeString
	RequestID       RequestIDString
	BookID          BookIDString
	LenderID        UserIDString
	RequesterID     UserIDString
	DueDate         OptionalTS `json:",omitempty"`
	ResponseMessage string
	OccurredAt      OccurredAtTS
}

// BuildLoanRequestAccepted creates a new LoanRequestAccepted event.
func BuildLoanRequestAccepted(request RequestRecord, dueDate *time.Time, responseMessage string, occurredAt time.Time) LoanRequestAccepted {
	return LoanRequestAccepted{
		EventType:       LoanRequestAcceptedEventType,
		RequestID:       request.RequestID,
		BookID:          request.BookID,
		LenderID:        request.LenderID,
		RequesterID:     request.RequesterID,
		DueDate:         ToOptionalTS(dueDate),
		ResponseMessage: responseMessage,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e LoanRequestAccepted) IsEventType() string {
	return LoanRequestAcceptedEventType
}

func (e LoanRequestAccepted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LoanRequestDeclined is the lender turning a pending request down.
type LoanRequestDeclined struct {
	EventType       EventTypeString
	RequestID       RequestIDString
	BookID          BookIDString
	LenderID        UserIDString
	RequesterID     UserIDString
	ResponseMessage string
	OccurredAt      OccurredAtTS
}

// BuildLoanRequestDeclined creates a new LoanRequestDeclined event.
func BuildLoanRequestDeclined(request RequestRecord, responseMessage string, occurredAt time.Time) LoanRequestDeclined {
	return LoanRequestDeclined{
		EventType:       LoanRequestDeclinedEventType,
		RequestID:       request.RequestID,
		BookID:          request.BookID,
		LenderID:        request.LenderID,
		RequesterID:     request.RequesterID,
		ResponseMessage: responseMessage,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e LoanRequestDeclined) IsEventType() string {
	return LoanRequestDeclinedEventType
}

func (e LoanRequestDeclined) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LoanRequestCancelled is the requester withdrawing a pending request.
type LoanRequestCancelled struct {
	EventType   EventTypeString
	RequestID   RequestIDString
	BookID      BookIDString
	LenderID    UserIDString
	RequesterID UserIDString
	OccurredAt  OccurredAtTS
}

// BuildLoanRequestCancelled creates a new LoanRequestCancelled event.
func BuildLoanRequestCancelled(request RequestRecord, occurredAt time.Time) LoanRequestCancelled {
	return LoanRequestCancelled{
		EventType:   LoanRequestCancelledEventType,
		RequestID:   request.RequestID,
		BookID:      request.BookID,
		LenderID:    request.LenderID,
		RequesterID: request.RequesterID,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e LoanRequestCancelled) IsEventType() string {
	return LoanRequestCancelledEventType
}

func (e LoanRequestCancelled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// LoanRequestReturned is the lender confirming the book came back.
type LoanRequestReturned struct {
	EventType   EventTypeString
	RequestID   RequestIDString
	BookID      BookIDString
	LenderID    UserIDString
	RequesterID UserIDString
	ReturnDate  time.Time
	OccurredAt  OccurredAtTS
}

// BuildLoanRequestReturned creates a new LoanRequestReturned event.
func BuildLoanRequestReturned(request RequestRecord, returnDate time.Time, occurredAt time.Time) LoanRequestReturned {
	return LoanRequestReturned{
		EventType:   LoanRequestReturnedEventType,
		RequestID:   request.RequestID,
		BookID:      request.BookID,
		LenderID:    request.LenderID,
		RequesterID: request.RequesterID,
		ReturnDate:  ToOccurredAt(returnDate),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e LoanRequestReturned) IsEventType() string {
	return LoanRequestReturnedEventType
}

func (e LoanRequestReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

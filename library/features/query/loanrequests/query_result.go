package loanrequests

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// RequestInfo represents one loan request.
type RequestInfo struct {
	RequestID         core.RequestIDString `json:"request_id"`
	BookID            core.BookIDString    `json:"book_id"`
	BookTitle         string               `json:"book_title"`
	LenderID          core.UserIDString    `json:"lender_id"`
	LenderUsername    string               `json:"lender_username"`
	RequesterID       core.UserIDString    `json:"requester_id"`
	RequesterUsername string               `json:"requester_username"`
	Status            core.RequestStatus   `json:"status"`
	Message           string               `json:"message,omitempty"`
	ResponseMessage   string               `json:"response_message,omitempty"`
	DueDate           core.OptionalTS      `json:"due_date,omitempty"`
	RequestedAt       time.Time            `json:"requested_at"`
	RespondedAt       core.OptionalTS      `json:"responded_at,omitempty"`
	ReturnDate        core.OptionalTS      `json:"return_date,omitempty"`
}

// LoanRequests represents the query result.
type LoanRequests struct {
	Requests             []RequestInfo `json:"requests"`
	Count                int           `json:"count"`
	PendingIncomingCount int           `json:"pending_incoming_count"`
	SequenceNumber       uint          `json:"-"`
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r LoanRequests) GetSequenceNumber() uint {
	return r.SequenceNumber
}

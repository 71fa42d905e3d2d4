package core

import (
	"time"
)

// CustodyStatus is the status of a Loan or a BorrowedBook record.
type CustodyStatus string

const (
	CustodyActive   CustodyStatus = "ACTIVE"
	CustodyOverdue  CustodyStatus = "OVERDUE"
	CustodyReturned CustodyStatus = "RETURNED"
)

// DeriveCustodyStatus is the single place OVERDUE is computed. It is never stored: every read path
// (lists, details, availability, statistics) calls this with its own clock, so they cannot disagree.
// A returned record is RETURNED regardless of its due date.
func DeriveCustodyStatus(returnDate *time.Time, dueDate *time.Time, now time.Time) CustodyStatus {
	if returnDate != nil {
		return CustodyReturned
	}

	if dueDate != nil && dueDate.Before(now) {
		return CustodyOverdue
	}

	return CustodyActive
}

// IsValid reports whether s is one of the known statuses.
func (s CustodyStatus) IsValid() bool {
	switch s {
	case CustodyActive, CustodyOverdue, CustodyReturned:
		return true
	default:
		return false
	}
}

// RequestStatus is the state of a UserLoanRequest.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestDeclined  RequestStatus = "DECLINED"
	RequestCancelled RequestStatus = "CANCELLED"
	RequestReturned  RequestStatus = "RETURNED"
)

// InvitationStatus is the state of a ContactInvitation.
type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "PENDING"
	InvitationStatusAccepted  InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined  InvitationStatus = "DECLINED"
	InvitationStatusCancelled InvitationStatus = "CANCELLED"
)

// Package cancelloanrequest implements the Cancel Loan Request use case: the requester withdraws a
// request the lender has not answered yet.
package cancelloanrequest

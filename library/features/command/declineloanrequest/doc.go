// Package declineloanrequest implements the Decline Loan Request use case: the lender turns a pending
// request down, optionally with a response message.
package declineloanrequest

// Package loanrequests implements the Loan Requests query use case: the requests a member received
// as lender or sent as requester, with book titles and counterpart usernames, and the count of
// pending incoming requests for notification badges.
package loanrequests

// Package acceptloanrequest implements the Accept Loan Request use case: the lender hands the book to
// the requesting member. From then on the book counts as loaned out until the lender confirms the return.
package acceptloanrequest

// Package returnloanrequest implements the Return Loan Request use case: the lender confirms that the
// book lent through an accepted request came back.
package returnloanrequest

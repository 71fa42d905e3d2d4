// Package returnloan implements the Return Loan use case: the contact gave the owner's book back.
package returnloan

// Package returnborrowedbook implements the Return Borrowed Book use case: the owner gave a borrowed
// book back to its source. The returned record stays as history and hides the book from the owner's
// collection until it is borrowed again or bought.
package returnborrowedbook

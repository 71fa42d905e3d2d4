// Package cancelinvitation implements the Cancel Invitation use case: the sender withdraws a pending invitation.
package cancelinvitation

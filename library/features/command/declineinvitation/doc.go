// Package declineinvitation implements the Decline Invitation use case: the recipient turns down a pending invitation.
package declineinvitation

// Package invitations implements the Invitations query use case: the pending invitations a member
// received, the invitations they sent, and the pending-received count for notification badges.
package invitations

// Package sendinvitation implements the Send Invitation use case: a member asks another member to become
// linked contacts. At most one invitation may be pending between two members, in either direction.
package sendinvitation

// Package acceptinvitation implements the Accept Invitation use case.
//
// Accepting links both members in one atomic append: for each side the existing contact for the other
// member is found (linked user, then email, then username) or a new linked contact is created.
package acceptinvitation

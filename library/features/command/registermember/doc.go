// Package registermember implements the Register Member use case.
//
// The authentication collaborator owns accounts. This slice mirrors a member into the event log so
// invitations can resolve usernames and emails and read models can show names.
package registermember

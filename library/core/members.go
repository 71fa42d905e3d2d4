package core

import (
	"strings"
)

// Member is a registered platform member.
type Member struct {
	UserID   UserIDString
	Username string
	Email    string
}

// Members is the member directory projected from MemberRegistered events.
type Members struct {
	byID map[UserIDString]Member
}

// ProjectMembers replays the history into a member directory.
func ProjectMembers(history DomainEvents) Members {
	m := Members{byID: make(map[UserIDString]Member)}

	for _, event := range history {
		if e, ok := event.(MemberRegistered); ok {
			m.byID[e.UserID] = Member{UserID: e.UserID, Username: e.Username, Email: e.Email}
		}
	}

	return m
}

// Get returns the member with userID.
func (m Members) Get(userID UserIDString) (Member, bool) {
	member, ok := m.byID[userID]
	return member, ok
}

// UsernameOf returns the username of userID, or "" for unknown members.
func (m Members) UsernameOf(userID UserIDString) string {
	return m.byID[userID].Username
}

// UsernameTaken reports whether a member with username exists, compared case-insensitively.
func (m Members) UsernameTaken(username string) bool {
	for _, member := range m.byID {
		if strings.EqualFold(member.Username, username) {
			return true
		}
	}

	return false
}

package registermember

import (
	"time"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "RegisterMember"
)

// Command represents the intent to register a platform member.
type Command struct {
	UserID     core.UserIDString
	Username   string
	Email      string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID core.UserIDString, username string, email string, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		Username:   username,
		Email:      email,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

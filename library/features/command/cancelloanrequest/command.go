package cancelloanrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "CancelLoanRequest"
)

// Command represents the requester's intent to withdraw a pending loan request.
type Command struct {
	RequestID   uuid.UUID
	RequesterID core.UserIDString
	OccurredAt  core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	requestID uuid.UUID,
	requesterID core.UserIDString,
	occurredAt time.Time,
) Command {

	return Command{
		RequestID:   requestID,
		RequesterID: requesterID,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}

package declineloanrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "DeclineLoanRequest"
)

// Command represents the lender's intent to decline a pending loan request.
type Command struct {
	RequestID       uuid.UUID
	LenderID        core.UserIDString
	ResponseMessage string
	OccurredAt      core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	requestID uuid.UUID,
	lenderID core.UserIDString,
	responseMessage string,
	occurredAt time.Time,
) Command {

	return Command{
		RequestID:       requestID,
		LenderID:        lenderID,
		ResponseMessage: responseMessage,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}

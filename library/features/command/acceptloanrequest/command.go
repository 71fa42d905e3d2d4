package acceptloanrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "AcceptLoanRequest"
)

// Command represents the lender's intent to accept a pending loan request.
// A nil DueDate keeps the date the requester asked for.
type Command struct {
	RequestID       uuid.UUID
	LenderID        core.UserIDString
	DueDate         core.OptionalTS
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
	dueDate *time.Time,
	responseMessage string,
	occurredAt time.Time,
) Command {

	return Command{
		RequestID:       requestID,
		LenderID:        lenderID,
		DueDate:         core.ToOptionalTS(dueDate),
		ResponseMessage: responseMessage,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}

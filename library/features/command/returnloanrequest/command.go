package returnloanrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "ReturnLoanRequest"
)

// Command represents the lender's confirmation that an accepted loan came back. A nil ReturnDate means now.
type Command struct {
	RequestID  uuid.UUID
	LenderID   core.UserIDString
	ReturnDate core.OptionalTS
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	requestID uuid.UUID,
	lenderID core.UserIDString,
	returnDate *time.Time,
	occurredAt time.Time,
) Command {

	return Command{
		RequestID:  requestID,
		LenderID:   lenderID,
		ReturnDate: core.ToOptionalTS(returnDate),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

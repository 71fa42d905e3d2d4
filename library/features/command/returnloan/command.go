package returnloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "ReturnLoan"
)

// Command represents the intent to mark a loan as returned. A nil ReturnDate means now.
type Command struct {
	OwnerID    core.UserIDString
	LoanID     uuid.UUID
	ReturnDate core.OptionalTS
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(ownerID core.UserIDString, loanID uuid.UUID, returnDate *time.Time, occurredAt time.Time) Command {
	return Command{
		OwnerID:    ownerID,
		LoanID:     loanID,
		ReturnDate: core.ToOptionalTS(returnDate),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

package requestloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "RequestLoan"
)

// Command represents a member's intent to borrow another member's book.
type Command struct {
	RequestID   uuid.UUID
	RequesterID core.UserIDString
	BookID      uuid.UUID
	Message     string
	DueDate     core.OptionalTS
	OccurredAt  core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	requestID uuid.UUID,
	requesterID core.UserIDString,
	bookID uuid.UUID,
	message string,
	dueDate *time.Time,
	occurredAt time.Time,
) Command {

	return Command{
		RequestID:   requestID,
		RequesterID: requesterID,
		BookID:      bookID,
		Message:     message,
		DueDate:     core.ToOptionalTS(dueDate),
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}

package addcontact

import (
	"time"

	"github.com/google/uuid"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

const (
	commandType = "AddContact"
)

// Command represents the intent to add a contact to an owner's address book.
type Command struct {
	ContactID  uuid.UUID
	OwnerID    core.UserIDString
	Fields     core.ContactFields
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	contactID uuid.UUID,
	ownerID core.UserIDString,
	fields core.ContactFields,
	occurredAt time.Time,
) Command {

	return Command{
		ContactID:  contactID,
		OwnerID:    ownerID,
		Fields:     fields,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

package entity

import (
	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// KindContact names the contact entity in validation errors and logs.
const KindContact = "contact"

type ContactType int16

const (
	ContactTypePhone ContactType = iota + 1
	ContactTypeEmail
	ContactTypeAddress
	ContactTypeOther
)

var contactTypeNames = map[ContactType]string{
	ContactTypePhone:   "phone",
	ContactTypeEmail:   "email",
	ContactTypeAddress: "address",
	ContactTypeOther:   "other",
}

func (c ContactType) String() string {
	if name, ok := contactTypeNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseContactType returns the zero ContactType for unknown names.
func ParseContactType(name string) ContactType {
	for c, n := range contactTypeNames {
		if n == name {
			return c
		}
	}
	return 0
}

// Contact is a way to reach someone on behalf of a student, such as a
// guardian's phone number.
type Contact struct {
	ID          uuid.UUID   `validate:"required"`
	Information string      `validate:"notblank"`
	Notes       string
	Type        ContactType `validate:"required,oneof=1 2 3 4"`

	record.Audit
}

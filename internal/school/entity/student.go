package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// KindStudent names the student entity in validation errors and logs.
const KindStudent = "student"

type Gender int16

const (
	GenderMale Gender = iota + 1
	GenderFemale
	GenderOther
)

var genderNames = map[Gender]string{
	GenderMale:   "male",
	GenderFemale: "female",
	GenderOther:  "other",
}

func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGender returns the zero Gender for unknown names so validation rejects it.
func ParseGender(name string) Gender {
	for g, n := range genderNames {
		if n == name {
			return g
		}
	}
	return 0
}

// Student is an enrolled pupil.
type Student struct {
	ID             uuid.UUID `validate:"required"`
	IdentityNumber string    `validate:"notblank"`
	FirstName      string    `validate:"notblank"`
	MiddleName     string
	LastName       string    `validate:"notblank"`
	BirthDate      time.Time `validate:"required"`
	Gender         Gender    `validate:"required,oneof=1 2 3"`

	record.Audit
}

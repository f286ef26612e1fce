package entity

import (
	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// KindStudentContact names the student contact link in validation errors and logs.
const KindStudentContact = "student contact"

// StudentContact links a student to one of their contacts. The pair of ids
// is the key; a link is never modified, only added or removed.
type StudentContact struct {
	StudentID uuid.UUID `validate:"required"`
	ContactID uuid.UUID `validate:"required"`

	record.Audit
}

// StudentContactKey renders the composite key of a link for error messages.
func StudentContactKey(studentID, contactID uuid.UUID) string {
	return studentID.String() + "/" + contactID.String()
}

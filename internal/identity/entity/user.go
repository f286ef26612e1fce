package entity

import (
	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// KindUser names the user entity in validation errors and logs.
const KindUser = "user"

// User is an account allowed to operate the school API. Fields are checked
// in declaration order and the first failing one is reported.
type User struct {
	ID          uuid.UUID `validate:"required"`
	UserName    string    `validate:"notblank"`
	Name        string    `validate:"notblank"`
	FamilyName  string    `validate:"notblank"`
	Email       string    `validate:"notblank,email"`
	PhoneNumber string

	record.Audit
}

// Package record holds what every stored entity shares: the audit trail and
// the field checks the record services run before touching storage.
package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
)

// Audit records who created and last updated a record, and when.
type Audit struct {
	CreatedDate time.Time
	UpdatedDate time.Time
	CreatedBy   uuid.UUID
	UpdatedBy   uuid.UUID
}

// Created stamps both dates for a record about to be inserted.
func (a *Audit) Created(now time.Time) {
	a.CreatedDate = now
	a.UpdatedDate = now
}

// Updated keeps the creation half of stored and stamps the update date.
func (a *Audit) Updated(now time.Time, stored Audit) {
	a.CreatedDate = stored.CreatedDate
	a.CreatedBy = stored.CreatedBy
	a.UpdatedDate = now
}

// CheckAdd returns the cause for the first invalid field of in, checking the
// tagged fields in declaration order and then CreatedBy and UpdatedBy.
// It returns nil when in may be inserted.
func CheckAdd(v validator.Validator, entity string, in any, a Audit) error {
	if cause := checkFields(v, entity, in); cause != nil {
		return cause
	}

	switch {
	case a.CreatedBy == uuid.Nil:
		return &goerror.InvalidFieldError{Entity: entity, Field: "CreatedBy", Value: a.CreatedBy}
	case a.UpdatedBy == uuid.Nil:
		return &goerror.InvalidFieldError{Entity: entity, Field: "UpdatedBy", Value: a.UpdatedBy}
	}

	return nil
}

// CheckModify is CheckAdd for updates. CreatedBy is taken from storage, so
// only UpdatedBy is required.
func CheckModify(v validator.Validator, entity string, in any, a Audit) error {
	if cause := checkFields(v, entity, in); cause != nil {
		return cause
	}

	if a.UpdatedBy == uuid.Nil {
		return &goerror.InvalidFieldError{Entity: entity, Field: "UpdatedBy", Value: a.UpdatedBy}
	}

	return nil
}

// CheckID returns the cause for a missing identifier.
func CheckID(entity, field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return &goerror.InvalidFieldError{Entity: entity, Field: field, Value: id}
	}
	return nil
}

func checkFields(v validator.Validator, entity string, in any) error {
	violation, err := v.FirstViolation(in)
	if err != nil {
		return err
	}
	if violation == nil {
		return nil
	}

	return &goerror.InvalidFieldError{Entity: entity, Field: violation.Field, Value: violation.Value}
}

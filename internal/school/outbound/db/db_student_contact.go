package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/campus/internal/school/entity"
)

const studentContactColumns = `student_id, contact_id, created_date, updated_date, created_by, updated_by`

func scanStudentContact(row pgx.CollectableRow) (entity.StudentContact, error) {
	var sc entity.StudentContact
	err := row.Scan(&sc.StudentID, &sc.ContactID, &sc.CreatedDate, &sc.UpdatedDate, &sc.CreatedBy, &sc.UpdatedBy)
	return sc, err
}

func (s *DB) InsertStudentContact(ctx context.Context, in entity.StudentContact) (_ *entity.StudentContact, err error) {
	ctx, span := s.startSpan(ctx, "InsertStudentContact")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudentContact, `INSERT INTO student_contacts (`+studentContactColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+studentContactColumns,
		in.StudentID, in.ContactID, in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) SelectAllStudentContacts(ctx context.Context) (_ []entity.StudentContact, err error) {
	ctx, span := s.startSpan(ctx, "SelectAllStudentContacts")
	defer func() { s.endSpan(span, err) }()

	return collectAll(ctx, s, scanStudentContact,
		`SELECT `+studentContactColumns+` FROM student_contacts ORDER BY student_id, contact_id`)
}

func (s *DB) SelectStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (_ *entity.StudentContact, err error) {
	ctx, span := s.startSpan(ctx, "SelectStudentContactByID")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudentContact, `SELECT `+studentContactColumns+` FROM student_contacts
		WHERE student_id = $1 AND contact_id = $2`, studentID, contactID)
}

func (s *DB) DeleteStudentContact(ctx context.Context, studentID, contactID uuid.UUID) (_ *entity.StudentContact, err error) {
	ctx, span := s.startSpan(ctx, "DeleteStudentContact")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudentContact, `DELETE FROM student_contacts
		WHERE student_id = $1 AND contact_id = $2
		RETURNING `+studentContactColumns, studentID, contactID)
}

package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/campus/internal/school/entity"
)

const studentColumns = `id, identity_number, first_name, middle_name, last_name, birth_date, gender,
	created_date, updated_date, created_by, updated_by`

func scanStudent(row pgx.CollectableRow) (entity.Student, error) {
	var st entity.Student
	err := row.Scan(
		&st.ID, &st.IdentityNumber, &st.FirstName, &st.MiddleName, &st.LastName, &st.BirthDate, &st.Gender,
		&st.CreatedDate, &st.UpdatedDate, &st.CreatedBy, &st.UpdatedBy,
	)
	return st, err
}

func (s *DB) InsertStudent(ctx context.Context, in entity.Student) (_ *entity.Student, err error) {
	ctx, span := s.startSpan(ctx, "InsertStudent")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudent, `INSERT INTO students (`+studentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+studentColumns,
		in.ID, in.IdentityNumber, in.FirstName, in.MiddleName, in.LastName, in.BirthDate, int16(in.Gender),
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) SelectAllStudents(ctx context.Context) (_ []entity.Student, err error) {
	ctx, span := s.startSpan(ctx, "SelectAllStudents")
	defer func() { s.endSpan(span, err) }()

	return collectAll(ctx, s, scanStudent,
		`SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name, id`)
}

func (s *DB) SelectStudentByID(ctx context.Context, id uuid.UUID) (_ *entity.Student, err error) {
	ctx, span := s.startSpan(ctx, "SelectStudentByID")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudent, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
}

func (s *DB) UpdateStudent(ctx context.Context, in entity.Student) (_ *entity.Student, err error) {
	ctx, span := s.startSpan(ctx, "UpdateStudent")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudent, `UPDATE students SET
			identity_number = $2, first_name = $3, middle_name = $4, last_name = $5, birth_date = $6, gender = $7,
			created_date = $8, updated_date = $9, created_by = $10, updated_by = $11
		WHERE id = $1
		RETURNING `+studentColumns,
		in.ID, in.IdentityNumber, in.FirstName, in.MiddleName, in.LastName, in.BirthDate, int16(in.Gender),
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

// DeleteStudent removes the student; its contact links go with it.
func (s *DB) DeleteStudent(ctx context.Context, id uuid.UUID) (_ *entity.Student, err error) {
	ctx, span := s.startSpan(ctx, "DeleteStudent")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanStudent, `DELETE FROM students WHERE id = $1 RETURNING `+studentColumns, id)
}

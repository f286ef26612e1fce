package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/campus/internal/identity/entity"
)

const userColumns = `id, user_name, name, family_name, email, phone_number,
	created_date, updated_date, created_by, updated_by`

func scanUser(row pgx.CollectableRow) (entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.UserName, &u.Name, &u.FamilyName, &u.Email, &u.PhoneNumber,
		&u.CreatedDate, &u.UpdatedDate, &u.CreatedBy, &u.UpdatedBy,
	)
	return u, err
}

func (s *DB) InsertUser(ctx context.Context, in entity.User) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "InsertUser")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanUser, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+userColumns,
		in.ID, in.UserName, in.Name, in.FamilyName, in.Email, in.PhoneNumber,
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) SelectAllUsers(ctx context.Context) (_ []entity.User, err error) {
	ctx, span := s.startSpan(ctx, "SelectAllUsers")
	defer func() { s.endSpan(span, err) }()

	return collectAll(ctx, s, scanUser, `SELECT `+userColumns+` FROM users ORDER BY created_date, id`)
}

func (s *DB) SelectUserByID(ctx context.Context, id uuid.UUID) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "SelectUserByID")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanUser, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *DB) UpdateUser(ctx context.Context, in entity.User) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "UpdateUser")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanUser, `UPDATE users SET
			user_name = $2, name = $3, family_name = $4, email = $5, phone_number = $6,
			created_date = $7, updated_date = $8, created_by = $9, updated_by = $10
		WHERE id = $1
		RETURNING `+userColumns,
		in.ID, in.UserName, in.Name, in.FamilyName, in.Email, in.PhoneNumber,
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) DeleteUser(ctx context.Context, id uuid.UUID) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "DeleteUser")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanUser, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)
}

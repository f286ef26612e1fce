package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/campus/internal/school/entity"
)

const contactColumns = `id, information, notes, type, created_date, updated_date, created_by, updated_by`

func scanContact(row pgx.CollectableRow) (entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID, &c.Information, &c.Notes, &c.Type,
		&c.CreatedDate, &c.UpdatedDate, &c.CreatedBy, &c.UpdatedBy,
	)
	return c, err
}

func (s *DB) InsertContact(ctx context.Context, in entity.Contact) (_ *entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "InsertContact")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanContact, `INSERT INTO contacts (`+contactColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+contactColumns,
		in.ID, in.Information, in.Notes, int16(in.Type),
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) SelectAllContacts(ctx context.Context) (_ []entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "SelectAllContacts")
	defer func() { s.endSpan(span, err) }()

	return collectAll(ctx, s, scanContact, `SELECT `+contactColumns+` FROM contacts ORDER BY created_date, id`)
}

func (s *DB) SelectContactByID(ctx context.Context, id uuid.UUID) (_ *entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "SelectContactByID")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanContact, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
}

func (s *DB) UpdateContact(ctx context.Context, in entity.Contact) (_ *entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "UpdateContact")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanContact, `UPDATE contacts SET
			information = $2, notes = $3, type = $4,
			created_date = $5, updated_date = $6, created_by = $7, updated_by = $8
		WHERE id = $1
		RETURNING `+contactColumns,
		in.ID, in.Information, in.Notes, int16(in.Type),
		in.CreatedDate, in.UpdatedDate, in.CreatedBy, in.UpdatedBy,
	)
}

func (s *DB) DeleteContact(ctx context.Context, id uuid.UUID) (_ *entity.Contact, err error) {
	ctx, span := s.startSpan(ctx, "DeleteContact")
	defer func() { s.endSpan(span, err) }()

	return collectOne(ctx, s, scanContact, `DELETE FROM contacts WHERE id = $1 RETURNING `+contactColumns, id)
}

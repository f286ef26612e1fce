package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/pgtest"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAudit() record.Audit {
	now := time.Now().UTC().Truncate(time.Microsecond)
	actor := uuid.New()
	return record.Audit{CreatedDate: now, UpdatedDate: now, CreatedBy: actor, UpdatedBy: actor}
}

func newStudent(number string) entity.Student {
	return entity.Student{
		ID:             uuid.New(),
		IdentityNumber: number,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		BirthDate:      time.Date(2012, 12, 10, 0, 0, 0, 0, time.UTC),
		Gender:         entity.GenderFemale,
		Audit:          newAudit(),
	}
}

func newContact() entity.Contact {
	return entity.Contact{
		ID:          uuid.New(),
		Information: "+62811000001",
		Notes:       "mother",
		Type:        entity.ContactTypePhone,
		Audit:       newAudit(),
	}
}

func TestDB_StudentLifecycle(t *testing.T) {
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()

	st := newStudent("S-0001")

	inserted, err := s.InsertStudent(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, st.ID, inserted.ID)
	assert.Equal(t, entity.GenderFemale, inserted.Gender)
	assert.Equal(t, "2012-12-10", inserted.BirthDate.Format(time.DateOnly))
	assert.True(t, st.CreatedDate.Equal(inserted.CreatedDate))

	dup := newStudent("S-0001")
	_, err = s.InsertStudent(ctx, dup)
	assert.ErrorIs(t, err, goerror.ErrConflict)

	st.MiddleName = "King"
	st.Gender = entity.GenderOther
	updated, err := s.UpdateStudent(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, "King", updated.MiddleName)
	assert.Equal(t, entity.GenderOther, updated.Gender)

	got, err := s.SelectStudentByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "King", got.MiddleName)

	all, err := s.SelectAllStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = s.DeleteStudent(ctx, st.ID)
	require.NoError(t, err)

	_, err = s.SelectStudentByID(ctx, st.ID)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestDB_ContactLifecycle(t *testing.T) {
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()

	c := newContact()

	inserted, err := s.InsertContact(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, entity.ContactTypePhone, inserted.Type)

	c.Type = entity.ContactTypeEmail
	c.Information = "guardian@example.com"
	updated, err := s.UpdateContact(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "guardian@example.com", updated.Information)
	assert.Equal(t, entity.ContactTypeEmail, updated.Type)

	all, err := s.SelectAllContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := s.DeleteContact(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)

	_, err = s.DeleteContact(ctx, c.ID)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestDB_StudentContactLifecycle(t *testing.T) {
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()

	st := newStudent("S-0002")
	_, err := s.InsertStudent(ctx, st)
	require.NoError(t, err)

	c := newContact()
	_, err = s.InsertContact(ctx, c)
	require.NoError(t, err)

	link := entity.StudentContact{StudentID: st.ID, ContactID: c.ID, Audit: newAudit()}

	inserted, err := s.InsertStudentContact(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, st.ID, inserted.StudentID)
	assert.Equal(t, c.ID, inserted.ContactID)

	_, err = s.InsertStudentContact(ctx, link)
	assert.ErrorIs(t, err, goerror.ErrConflict)

	dangling := entity.StudentContact{StudentID: uuid.New(), ContactID: c.ID, Audit: newAudit()}
	_, err = s.InsertStudentContact(ctx, dangling)
	assert.ErrorIs(t, err, goerror.ErrInvalidReference)

	got, err := s.SelectStudentContactByID(ctx, st.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, link.CreatedDate.Equal(got.CreatedDate))

	all, err := s.SelectAllStudentContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = s.DeleteStudentContact(ctx, st.ID, c.ID)
	require.NoError(t, err)

	_, err = s.SelectStudentContactByID(ctx, st.ID, c.ID)
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	_, err = s.SelectContactByID(ctx, c.ID)
	require.NoError(t, err, "unlinking keeps the contact")
}

func TestDB_DeleteStudentCascadesLinks(t *testing.T) {
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()

	st := newStudent("S-0003")
	_, err := s.InsertStudent(ctx, st)
	require.NoError(t, err)

	c := newContact()
	_, err = s.InsertContact(ctx, c)
	require.NoError(t, err)

	_, err = s.InsertStudentContact(ctx, entity.StudentContact{StudentID: st.ID, ContactID: c.ID, Audit: newAudit()})
	require.NoError(t, err)

	_, err = s.DeleteStudent(ctx, st.ID)
	require.NoError(t, err)

	all, err := s.SelectAllStudentContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDB_mapError(t *testing.T) {
	s := NewDB(nil, instrument.NewNoop())
	other := errors.New("connection reset")

	assert.NoError(t, s.mapError(nil))
	assert.Equal(t, goerror.ErrNotFound, s.mapError(pgx.ErrNoRows))
	assert.Equal(t, goerror.ErrConflict, s.mapError(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, goerror.ErrInvalidReference, s.mapError(&pgconn.PgError{Code: "23503"}))
	assert.Same(t, other, s.mapError(other))
}

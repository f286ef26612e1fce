package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddContact_Success(t *testing.T) {
	f := newFixture(t)

	in := randomContact()
	in.Notes = ""
	expected := *in
	expected.CreatedDate = fixedNow
	expected.UpdatedDate = fixedNow

	f.clock.On("Now").Return(fixedNow).Once()
	f.repo.On("InsertContact", mock.Anything, expected).Return(&expected, nil).Once()

	got, err := f.uc.AddContact(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, &expected, got)
	f.verify(t)
}

func TestAddContact_Rejected(t *testing.T) {
	tests := []struct {
		name string
		in   func() *entity.Contact
		want error
	}{
		{
			name: "null",
			in:   func() *entity.Contact { return nil },
			want: null(entity.KindContact),
		},
		{
			name: "information",
			in: func() *entity.Contact {
				c := randomContact()
				c.Information = "  "
				return c
			},
			want: invalid(entity.KindContact, "Information", "  "),
		},
		{
			name: "type",
			in: func() *entity.Contact {
				c := randomContact()
				c.Type = 0
				return c
			},
			want: invalid(entity.KindContact, "Type", entity.ContactType(0)),
		},
		{
			name: "created by",
			in: func() *entity.Contact {
				c := randomContact()
				c.CreatedBy = uuid.Nil
				return c
			},
			want: invalid(entity.KindContact, "CreatedBy", uuid.Nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectRejected(tt.want)

			_, err := f.uc.AddContact(context.Background(), tt.in())

			assert.Equal(t, tt.want, err)
			f.verify(t)
			f.untouched(t)
		})
	}
}

func TestModifyContact(t *testing.T) {
	t.Run("success keeps creation audit", func(t *testing.T) {
		f := newFixture(t)
		stored := randomContact()
		in := *stored
		in.Information = "guardian@example.com"
		in.Type = entity.ContactTypeEmail
		in.CreatedBy = uuid.New()

		expected := in
		expected.CreatedBy = stored.CreatedBy
		expected.CreatedDate = stored.CreatedDate
		expected.UpdatedDate = fixedNow

		f.repo.On("SelectContactByID", mock.Anything, stored.ID).Return(stored, nil).Once()
		f.clock.On("Now").Return(fixedNow).Once()
		f.repo.On("UpdateContact", mock.Anything, expected).Return(&expected, nil).Once()

		got, err := f.uc.ModifyContact(context.Background(), &in)

		require.NoError(t, err)
		assert.Equal(t, stored.CreatedBy, got.CreatedBy)
		f.verify(t)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		in := randomContact()
		want := notFound(entity.KindContact, in.ID)

		f.repo.On("SelectContactByID", mock.Anything, in.ID).Return(nil, goerror.ErrNotFound).Once()
		f.expectRejected(want)

		_, err := f.uc.ModifyContact(context.Background(), in)

		assert.Equal(t, want, err)
		f.verify(t)
	})
}

func TestModifyContact_Rejected(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *entity.Contact) *entity.Contact
		want error
	}{
		{
			name: "null",
			edit: func(*entity.Contact) *entity.Contact { return nil },
			want: null(entity.KindContact),
		},
		{
			name: "id",
			edit: func(c *entity.Contact) *entity.Contact { c.ID = uuid.Nil; return c },
			want: invalid(entity.KindContact, "ID", uuid.Nil),
		},
		{
			name: "information empty",
			edit: func(c *entity.Contact) *entity.Contact { c.Information = ""; return c },
			want: invalid(entity.KindContact, "Information", ""),
		},
		{
			name: "information blank",
			edit: func(c *entity.Contact) *entity.Contact { c.Information = "   "; return c },
			want: invalid(entity.KindContact, "Information", "   "),
		},
		{
			name: "type unknown",
			edit: func(c *entity.Contact) *entity.Contact { c.Type = 7; return c },
			want: invalid(entity.KindContact, "Type", entity.ContactType(7)),
		},
		{
			name: "updated by",
			edit: func(c *entity.Contact) *entity.Contact { c.UpdatedBy = uuid.Nil; return c },
			want: invalid(entity.KindContact, "UpdatedBy", uuid.Nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectRejected(tt.want)

			_, err := f.uc.ModifyContact(context.Background(), tt.edit(randomContact()))

			assert.Equal(t, tt.want, err)
			f.verify(t)
			f.untouched(t)
		})
	}
}

func TestRemoveContactByID(t *testing.T) {
	f := newFixture(t)
	stored := randomContact()

	f.repo.On("SelectContactByID", mock.Anything, stored.ID).Return(stored, nil).Once()
	f.repo.On("DeleteContact", mock.Anything, stored.ID).Return(stored, nil).Once()

	got, err := f.uc.RemoveContactByID(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	f.verify(t)
}

func TestRetrieveContactByID_NilID(t *testing.T) {
	f := newFixture(t)
	want := invalid(entity.KindContact, "ID", uuid.Nil)
	f.expectRejected(want)

	_, err := f.uc.RetrieveContactByID(context.Background(), uuid.Nil)

	assert.Equal(t, want, err)
	f.verify(t)
	f.untouched(t)
}

func TestRetrieveAllContacts(t *testing.T) {
	f := newFixture(t)
	f.repo.On("SelectAllContacts", mock.Anything).Return([]entity.Contact{}, nil).Once()

	got, err := f.uc.RetrieveAllContacts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
	f.verify(t)
}

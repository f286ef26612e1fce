package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc     *Usecase
	repo   *MockRepoDB
	clock  *MockClock
	logger *MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		repo:   &MockRepoDB{},
		clock:  &MockClock{},
		logger: &MockLogger{},
	}
	f.uc = New(Dependency{
		RepoDB:     f.repo,
		Validator:  v,
		Clock:      f.clock,
		Logger:     f.logger,
		Instrument: instrument.NewNoop(),
	})

	return f
}

func (f *fixture) verify(t *testing.T) {
	t.Helper()

	f.repo.AssertExpectations(t)
	f.clock.AssertExpectations(t)
	f.logger.AssertExpectations(t)
}

func (f *fixture) expectRejected(want error) {
	f.logger.On("Error", mock.Anything, want).Return().Once()
}

// untouched asserts that neither storage nor the clock saw the call.
func (f *fixture) untouched(t *testing.T) {
	t.Helper()

	require.Empty(t, f.repo.Calls)
	f.clock.AssertNotCalled(t, "Now")
}

var fixedNow = time.Date(2024, 9, 2, 7, 30, 0, 0, time.UTC)

func audit() record.Audit {
	actor := uuid.New()
	return record.Audit{CreatedBy: actor, UpdatedBy: actor}
}

func randomStudent() *entity.Student {
	return &entity.Student{
		ID:             uuid.New(),
		IdentityNumber: "S-2024-0001",
		FirstName:      "Ada",
		MiddleName:     "King",
		LastName:       "Lovelace",
		BirthDate:      time.Date(2012, 12, 10, 0, 0, 0, 0, time.UTC),
		Gender:         entity.GenderFemale,
		Audit:          audit(),
	}
}

func randomContact() *entity.Contact {
	return &entity.Contact{
		ID:          uuid.New(),
		Information: "+62811000001",
		Notes:       "mother",
		Type:        entity.ContactTypePhone,
		Audit:       audit(),
	}
}

func randomStudentContact() *entity.StudentContact {
	return &entity.StudentContact{
		StudentID: uuid.New(),
		ContactID: uuid.New(),
		Audit:     audit(),
	}
}

func invalid(kind, field string, value any) error {
	return goerror.NewValidation(kind, &goerror.InvalidFieldError{Entity: kind, Field: field, Value: value})
}

func notFound(kind string, id any) error {
	return goerror.NewValidation(kind, &goerror.NotFoundError{Entity: kind, ID: id})
}

func null(kind string) error {
	return goerror.NewValidation(kind, &goerror.NullEntityError{Entity: kind})
}

package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/clock"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	InsertStudent(ctx context.Context, student entity.Student) (*entity.Student, error)
	SelectAllStudents(ctx context.Context) ([]entity.Student, error)
	SelectStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	UpdateStudent(ctx context.Context, student entity.Student) (*entity.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	InsertContact(ctx context.Context, contact entity.Contact) (*entity.Contact, error)
	SelectAllContacts(ctx context.Context) ([]entity.Contact, error)
	SelectContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	UpdateContact(ctx context.Context, contact entity.Contact) (*entity.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	InsertStudentContact(ctx context.Context, sc entity.StudentContact) (*entity.StudentContact, error)
	SelectAllStudentContacts(ctx context.Context) ([]entity.StudentContact, error)
	SelectStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error)
	DeleteStudentContact(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error)
}

// Usecase validates students, contacts and the links between them before
// handing them to storage. Rejections are wrapped per entity kind with
// goerror.NewValidation and logged once.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	clock     clock.Clocker
	logger    instrument.Logger
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Clock      clock.Clocker
	Logger     instrument.Logger
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		clock:     dep.Clock,
		logger:    dep.Logger,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("school.usecase").Start(ctx, name)
}

func (s *Usecase) reject(ctx context.Context, kind string, cause error) error {
	err := goerror.NewValidation(kind, cause)
	s.logger.Error(ctx, err)
	return err
}

// missing reports whether a select-by-id found nothing.
func missing[T any](row *T, err error) bool {
	return errors.Is(err, goerror.ErrNotFound) || (err == nil && row == nil)
}

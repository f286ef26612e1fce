package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/clock"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	InsertUser(ctx context.Context, user entity.User) (*entity.User, error)
	SelectAllUsers(ctx context.Context) ([]entity.User, error)
	SelectUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, user entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// Usecase validates users before handing them to storage. Every rejected
// call is wrapped with goerror.NewValidation, logged once and returned;
// storage errors are returned untouched.
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
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) reject(ctx context.Context, cause error) error {
	err := goerror.NewValidation(entity.KindUser, cause)
	s.logger.Error(ctx, err)
	return err
}

package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/campus/internal/identity/inbound"
	"github.com/shandysiswandi/campus/internal/identity/outbound/db"
	"github.com/shandysiswandi/campus/internal/identity/usecase"
	"github.com/shandysiswandi/campus/internal/pkg/clock"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/router"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Logger     instrument.Logger          `validate:"required"`
	UUID       uid.RecordID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		Validator:  dep.Validator,
		Clock:      dep.Clock,
		Logger:     dep.Logger,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.UUID)

	return nil
}

package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/campus/internal/identity"
	"github.com/shandysiswandi/campus/internal/school"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			Logger:     a.logger,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.school.enabled") {
		if err := school.New(school.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			Logger:     a.logger,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module school", "error", err)
			os.Exit(1)
		}
	}
}

package instrument

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/campus/internal/pkg/goerror"
)

// Logger is the error sink used by the record services. A service reports
// each rejected request exactly once through Error.
type Logger interface {
	Error(ctx context.Context, err error)
}

// SlogLogger writes errors through a slog.Logger.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger returns a Logger backed by l, or by slog.Default when l is nil.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{log: l}
}

// Error logs err at error level, adding entity and code when err is a *goerror.Error.
func (s *SlogLogger) Error(ctx context.Context, err error) {
	if err == nil {
		return
	}

	l := s.log
	if l == nil {
		l = slog.Default()
	}

	attrs := []any{"error", err}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		if e := gerr.Entity(); e != "" {
			attrs = append(attrs, "entity", e)
		}
		attrs = append(attrs, "code", gerr.Code().String())
		if f := gerr.Fields(); len(f) > 0 {
			attrs = append(attrs, "fields", f)
		}
	}

	l.ErrorContext(ctx, "request rejected", attrs...)
}

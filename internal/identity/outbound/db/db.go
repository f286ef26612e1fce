package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

// mapError translates driver errors into storage sentinels:
//   - no rows → goerror.ErrNotFound
//   - 23505 unique_violation → goerror.ErrConflict
//   - 23503 foreign_key_violation → goerror.ErrInvalidReference
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return goerror.ErrConflict
		case "23503":
			return goerror.ErrInvalidReference
		}
	}

	return err
}

// collectOne runs a query expected to return exactly one row.
func collectOne[T any](ctx context.Context, s *DB, scan pgx.RowToFunc[T], sql string, args ...any) (*T, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	v, err := pgx.CollectExactlyOneRow(rows, scan)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &v, nil
}

func collectAll[T any](ctx context.Context, s *DB, scan pgx.RowToFunc[T], sql string, args ...any) ([]T, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	vs, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, s.mapError(err)
	}

	return vs, nil
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shandysiswandi/campus/internal/pkg/idempotency"
	"github.com/shandysiswandi/campus/internal/pkg/jwt"
)

// HeaderIdempotencyKey lets clients retry a POST without creating duplicates.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLen = 255

var errUnsuccessful = errors.New("request was not successful")

// outcomeRecorder remembers whether the handler wrote and with which status.
type outcomeRecorder struct {
	http.ResponseWriter
	status int
}

func (w *outcomeRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *outcomeRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}

func (w *outcomeRecorder) SetError(err error) {
	if setter, ok := w.ResponseWriter.(interface{ SetError(error) }); ok {
		setter.SetError(err)
	}
}

// middlewareIdempotency runs a request carrying an Idempotency-Key at most
// once per caller, route and key. Any 4xx or 5xx outcome releases the key so
// the client can retry.
func middlewareIdempotency(idem idempotency.Idempotency) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(HeaderIdempotencyKey))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxIdempotencyKeyLen || strings.ContainsAny(key, "\r\n") {
				writeJSON(w, errorResponse{Message: "Invalid idempotency key"}, http.StatusBadRequest)
				return
			}

			scoped := strings.Join([]string{jwt.ActorID(r.Context()).String(), r.Method, matchedRoutePath(r), key}, ":")
			rec := &outcomeRecorder{ResponseWriter: w}

			err := idem.Exec(r.Context(), scoped, func(ctx context.Context) error {
				next.ServeHTTP(rec, r.WithContext(ctx))
				if rec.status >= http.StatusBadRequest {
					return errUnsuccessful
				}
				return nil
			})

			switch {
			case err == nil:
			case errors.Is(err, idempotency.ErrAlreadyInProgress):
				writeJSON(w, errorResponse{Message: "A request with this idempotency key is in progress"}, http.StatusConflict)
			case errors.Is(err, idempotency.ErrAlreadyCompleted):
				writeJSON(w, errorResponse{Message: "A request with this idempotency key was already processed"}, http.StatusConflict)
			case rec.status == 0:
				slog.ErrorContext(r.Context(), "idempotency store unavailable", "error", err)
				writeJSON(w, errorResponse{Message: "Service temporarily unavailable"}, http.StatusServiceUnavailable)
			case !errors.Is(err, errUnsuccessful):
				slog.WarnContext(r.Context(), "failed to record idempotency outcome", "error", err)
			}
		})
	}
}

// Package router provides the HTTP routing layer: an httprouter-backed Router
// whose handlers return (payload, error) and get encoded into a uniform JSON
// envelope, plus the standard middleware stack.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/campus/internal/pkg/config"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/idempotency"
	"github.com/shandysiswandi/campus/internal/pkg/instrument"
	"github.com/shandysiswandi/campus/internal/pkg/jwt"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
	"github.com/shandysiswandi/campus/internal/pkg/validator"
)

type errorResponse struct {
	Message string            `json:"message" example:"example string message"`
	Error   map[string]string `json:"error,omitempty"`
}

type successResponse struct {
	Message string         `json:"message" example:"example string message"`
	Data    any            `json:"data" swaggertype:"object"`
	Meta    map[string]any `json:"meta,omitempty" swaggertype:"object"`
}

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(r *Request) (any, error)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// JWT validates and parses authentication tokens.
	JWT jwt.JWT
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
	// Idempotency guards POST endpoints carrying an Idempotency-Key header. Optional.
	Idempotency idempotency.Idempotency
	// HealthChecks are probed by GET /health, keyed by dependency name.
	HealthChecks map[string]HealthCheck
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr      *httprouter.Router
	mws     []Middleware
	postMws []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, errorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	ins := cfg.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	publicEndpoints := map[string]map[string]struct{}{
		http.MethodGet: {
			"/":       {},
			"/health": {},
		},
	}

	ro := &Router{
		hr: hr,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareIP,
			middlewareCorrelationID(cfg.UUID),
			middlewareObservability(cfg.Config, ins),
			middlewareMaintenance(cfg.Config),
			middlewareAuthentication(cfg.JWT, publicEndpoints),
		},
	}
	if cfg.Idempotency != nil {
		ro.postMws = append(ro.postMws, middlewareIdempotency(cfg.Idempotency))
	}

	ro.GET("/", func(*Request) (any, error) {
		return welcome{}, nil
	})
	ro.GET("/health", healthHandler(cfg.HealthChecks))

	return ro
}

type welcome struct{}

func (welcome) Message() string { return "Welcome to API Campus" }

type healthReport map[string]string

func (h healthReport) Message() string { return "service is healthy" }

func healthHandler(checks map[string]HealthCheck) Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(r *Request) (any, error) {
		report := make(healthReport, len(names))
		failed := make(map[string]string)

		for _, name := range names {
			if err := checks[name](r.Context()); err != nil {
				slog.WarnContext(r.Context(), "health check failed", "dependency", name, "error", err)
				failed[name] = "down"
				continue
			}
			report[name] = "up"
		}

		if len(failed) > 0 {
			return nil, goerror.NewUnavailable("service is unhealthy", failed)
		}

		return report, nil
	}
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
// POST endpoints honor the Idempotency-Key header when idempotency is configured.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, append(r.postMws, mws...)...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	all := make([]Middleware, 0, len(r.mws)+len(mws))
	all = append(all, r.mws...)
	all = append(all, mws...)

	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			if setter, ok := w.(interface{ SetError(error) }); ok {
				setter.SetError(err)
			}
			encodeError(w, err)
			return
		}
		encodeOK(w, resp)
	}), all...))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func encodeError(w http.ResponseWriter, err error) {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		writeJSON(w, errorResponse{Message: sentinelMessage(err)}, sentinelStatus(err))
		return
	}

	errResp := errorResponse{Message: gerr.Msg()}

	var errValidate validator.V10ValidationError
	if errors.As(err, &errValidate) {
		errResp.Error = errValidate.Values()
	} else if len(gerr.Fields()) > 0 {
		errResp.Error = gerr.Fields()
	}

	writeJSON(w, errResp, gerr.StatusCode())
}

// sentinelStatus maps storage sentinels that services pass through untouched.
func sentinelStatus(err error) int {
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, goerror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, goerror.ErrInvalidReference):
		return http.StatusFailedDependency
	default:
		return http.StatusInternalServerError
	}
}

func sentinelMessage(err error) string {
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, goerror.ErrConflict):
		return "Resource already exists"
	case errors.Is(err, goerror.ErrInvalidReference):
		return "Referenced resource does not exist"
	default:
		return "Internal server error"
	}
}

func encodeOK(w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface{ StatusCode() int }); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := "request has been successfully"
	if m, ok := resp.(interface{ Message() string }); ok {
		msg = m.Message()
	}

	var meta map[string]any
	if m, ok := resp.(interface{ Meta() map[string]any }); ok {
		meta = m.Meta()
	}

	data := resp
	if _, empty := resp.(welcome); empty {
		data = nil
	}

	writeJSON(w, successResponse{Message: msg, Data: data, Meta: meta}, code)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}

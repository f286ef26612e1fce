package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/config"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/pkg/idempotency"
	"github.com/shandysiswandi/campus/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type successEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

type errorEnvelope struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) Generate(userID uuid.UUID, userName string) (string, error) {
	args := m.Called(userID, userName)
	return args.String(0), args.Error(1)
}

func (m *MockJWT) Verify(tokenStr string) (jwt.Claims, error) {
	args := m.Called(tokenStr)
	return args.Get(0).(jwt.Claims), args.Error(1)
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

const validToken = "good-token"

func newTestRouter(t *testing.T, cfg Config) (*Router, uuid.UUID) {
	t.Helper()

	actor := uuid.New()
	j := &MockJWT{}
	j.On("Verify", validToken).Return(jwt.Claims{UserID: actor, UserName: "jdoe"}, nil).Maybe()
	j.On("Verify", mock.Anything).Return(jwt.Claims{}, jwt.ErrInvalidToken).Maybe()

	cfg.JWT = j
	if cfg.UUID == nil {
		cfg.UUID = fixedID("generated-cid")
	}

	return NewRouter(cfg), actor
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + validToken}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, Config{
		HealthChecks: map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
		},
	})

	rec := do(t, r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "generated-cid", rec.Header().Get(HeaderCorrelationID))

	rec = do(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.JSONEq(t, `{"database":"up"}`, string(env.Data))
}

func TestRouter_HealthDown(t *testing.T) {
	r, _ := newTestRouter(t, Config{
		HealthChecks: map[string]HealthCheck{
			"cache": func(context.Context) error { return errors.New("dial tcp: refused") },
		},
	})

	rec := do(t, r, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, map[string]string{"cache": "down"}, decodeError(t, rec).Error)
}

func TestRouter_Authentication(t *testing.T) {
	r, actor := newTestRouter(t, Config{})
	r.GET("/api/v1/me", func(req *Request) (any, error) {
		return map[string]string{"id": jwt.ActorID(req.Context()).String()}, nil
	})

	rec := do(t, r, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required", decodeError(t, rec).Message)

	rec = do(t, r, http.MethodGet, "/api/v1/me", "", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeError(t, rec).Message)

	rec = do(t, r, http.MethodGet, "/api/v1/me", "", bearer())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), actor.String())
}

func TestRouter_ErrorEncoding(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found sentinel", goerror.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"conflict sentinel", goerror.ErrConflict, http.StatusConflict, "Resource already exists"},
		{"reference sentinel", goerror.ErrInvalidReference, http.StatusFailedDependency, "Referenced resource does not exist"},
		{"plain error", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
		{
			"validation",
			goerror.NewValidation("user", &goerror.InvalidFieldError{Entity: "user", Field: "UserName", Value: ""}),
			http.StatusUnprocessableEntity,
			"Invalid user, fix the errors and try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, Config{})
			r.GET("/api/v1/fail", func(*Request) (any, error) { return nil, tt.err })

			rec := do(t, r, http.MethodGet, "/api/v1/fail", "", bearer())

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	r, _ := newTestRouter(t, Config{})
	r.GET("/api/v1/things", func(*Request) (any, error) { return nil, nil })

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/unknown", "", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodPut, "/api/v1/things", "", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodGet, "/api/v1/things", "", bearer()).Code)
}

func TestRouter_Recover(t *testing.T) {
	r, _ := newTestRouter(t, Config{})
	r.GET("/api/v1/panic", func(*Request) (any, error) { panic("boom") })

	rec := do(t, r, http.MethodGet, "/api/v1/panic", "", bearer())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
}

func TestRouter_Maintenance(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  maintenance:
    enabled: false
    endpoints: "/api/v1/things"
`))
	require.NoError(t, err)

	r, _ := newTestRouter(t, Config{Config: cfg})
	r.GET("/api/v1/things", func(*Request) (any, error) { return nil, nil })
	r.GET("/api/v1/other", func(*Request) (any, error) { return nil, nil })

	assert.Equal(t, http.StatusServiceUnavailable, do(t, r, http.MethodGet, "/api/v1/things", "", bearer()).Code)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodGet, "/api/v1/other", "", bearer()).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", "", nil).Code)
}

func TestRouter_CorrelationIDFromHeader(t *testing.T) {
	r, _ := newTestRouter(t, Config{})

	rec := do(t, r, http.MethodGet, "/", "", map[string]string{HeaderRequestID: "  upstream-id  "})

	assert.Equal(t, "upstream-id", rec.Header().Get(HeaderCorrelationID))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		headers map[string]string
		remote  string
		want    string
	}{
		{map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.9"},
		{map[string]string{"X-Real-IP": "not-an-ip"}, "10.0.0.2:1234", "10.0.0.2"},
		{nil, "bad", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		for k, v := range tt.headers {
			req.Header.Set(k, v)
		}
		assert.Equal(t, tt.want, clientIP(req))
	}
}

type MockIdempotency struct {
	mock.Mock
}

func (m *MockIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error {
	args := m.Called(ctx, key, fn)
	if run, ok := args.Get(0).(bool); ok && run {
		return fn(ctx)
	}
	return args.Error(1)
}

func TestRouter_Idempotency(t *testing.T) {
	t.Run("no header skips store", func(t *testing.T) {
		idem := &MockIdempotency{}
		r, _ := newTestRouter(t, Config{Idempotency: idem})
		r.POST("/api/v1/things", func(*Request) (any, error) { return map[string]string{}, nil })

		rec := do(t, r, http.MethodPost, "/api/v1/things", "{}", bearer())

		assert.Equal(t, http.StatusOK, rec.Code)
		idem.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("first request runs handler", func(t *testing.T) {
		idem := &MockIdempotency{}
		r, actor := newTestRouter(t, Config{Idempotency: idem})
		idem.On("Exec", mock.Anything, actor.String()+":POST:/api/v1/things:abc", mock.Anything).Return(true, nil).Once()
		r.POST("/api/v1/things", func(*Request) (any, error) { return map[string]string{}, nil })

		headers := bearer()
		headers[HeaderIdempotencyKey] = "abc"
		rec := do(t, r, http.MethodPost, "/api/v1/things", "{}", headers)

		assert.Equal(t, http.StatusOK, rec.Code)
		idem.AssertExpectations(t)
	})

	t.Run("replayed key is rejected", func(t *testing.T) {
		idem := &MockIdempotency{}
		r, _ := newTestRouter(t, Config{Idempotency: idem})
		idem.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(false, idempotency.ErrAlreadyCompleted)
		r.POST("/api/v1/things", func(*Request) (any, error) {
			t.Fatal("handler must not run")
			return nil, nil
		})

		headers := bearer()
		headers[HeaderIdempotencyKey] = "abc"
		rec := do(t, r, http.MethodPost, "/api/v1/things", "{}", headers)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		idem := &MockIdempotency{}
		r, _ := newTestRouter(t, Config{Idempotency: idem})
		idem.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
		r.POST("/api/v1/things", func(*Request) (any, error) { return map[string]string{}, nil })

		headers := bearer()
		headers[HeaderIdempotencyKey] = "abc"
		rec := do(t, r, http.MethodPost, "/api/v1/things", "{}", headers)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRequest_Helpers(t *testing.T) {
	r, _ := newTestRouter(t, Config{})
	id := uuid.New()

	type payload struct {
		Name string `json:"name"`
	}

	r.PUT("/api/v1/things/:id", func(req *Request) (any, error) {
		got, err := req.GetParamUUID("id")
		if err != nil {
			return nil, err
		}
		var in payload
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		return map[string]string{"id": got.String(), "name": in.Name}, nil
	})

	rec := do(t, r, http.MethodPut, "/api/v1/things/"+id.String(), `{"name":"x"}`, bearer())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())

	rec = do(t, r, http.MethodPut, "/api/v1/things/not-a-uuid", `{"name":"x"}`, bearer())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]string{"id": "must be a valid uuid"}, decodeError(t, rec).Error)

	rec = do(t, r, http.MethodPut, "/api/v1/things/"+id.String(), `{"name":"x","extra":1}`, bearer())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

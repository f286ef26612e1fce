package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewLogHandler_MasksAndStamps(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewLogHandler(&buf, "campus", nil, []string{" Authorization ", "password"}))

	ctx := SetCorrelationID(context.Background(), "cid-1")
	log.InfoContext(ctx, "request received",
		"authorization", "Bearer abc",
		"body", map[string]any{"user": "jdoe", "Password": "secret"},
		"raw", `{"password":"x","nested":[{"password":"y"}]}`,
	)

	got := decodeLine(t, &buf)
	assert.Equal(t, "request received", got["msg"])
	assert.Equal(t, "INFO", got["severity"])
	assert.Equal(t, "cid-1", got["_cID"])
	assert.Equal(t, "campus", got["service"])
	assert.Equal(t, "***", got["authorization"])
	assert.Equal(t, map[string]any{"user": "jdoe", "Password": "***"}, got["body"])
	assert.JSONEq(t, `{"password":"***","nested":[{"password":"***"}]}`, got["raw"].(string))
	assert.Contains(t, got, "ts")
}

func TestNewLogHandler_WithAttrsMasked(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewLogHandler(&buf, "", nil, []string{"token"})).With("token", "t0k3n")

	log.Info("hello")

	got := decodeLine(t, &buf)
	assert.Equal(t, "***", got["token"])
	assert.NotContains(t, got, "service")
	assert.NotContains(t, got, "_cID")
}

func TestMask(t *testing.T) {
	keys := MaskKeys([]string{"secret", "", "  "})
	assert.Len(t, keys, 1)

	in := []any{map[string]any{"SECRET": 1, "keep": "v"}, "plain"}
	assert.Equal(t, []any{map[string]any{"SECRET": "***", "keep": "v"}, "plain"}, Mask(in, keys))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

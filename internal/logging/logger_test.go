package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info("dropped")
	logger.Error(errors.New("boom"), "store failure")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "store failure", entry["message"])
	assert.Equal(t, "fyyur", entry["service"])
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "loud", Output: &buf})

	logger.Info("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: "debug", Output: &buf}))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	WithContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

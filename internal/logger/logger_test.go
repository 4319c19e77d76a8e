package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(WithOutput(&buf), WithLevel(slog.LevelWarn))

	log.Info("dropped")
	log.With("tool", "DeleteUser").Warn("kept", "user_id", "U1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "DeleteUser", rec["tool"])
	assert.Equal(t, "U1", rec["user_id"])
}

func TestNewWithOptions_Text(t *testing.T) {
	var buf bytes.Buffer
	NewWithOptions(WithOutput(&buf), WithFormat("text")).Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNoOpLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		l := NoOpLogger()
		l.Error("ignored", "k", "v")
		l.With("a", 1).Info("ignored")
	})
}

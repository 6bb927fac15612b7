package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestNew_StampsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Output: &buf, Service: "coaching-api", Env: "staging"})
	log.Info().Str("user_id", "u1").Msg("login succeeded")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "coaching-api", entry["service"])
	assert.Equal(t, "staging", entry["env"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["time"])
}

func TestNew_OmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "service")
	assert.NotContains(t, entry, "env")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	log := Init(Options{Output: &second})

	log.Info().Msg("hello")
	assert.NotZero(t, first.Len())
	assert.Zero(t, second.Len())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Output: &buf})

	ctx := WithRequest(context.Background(), base, "req-123")
	reqLog := FromContext(ctx, zerolog.Nop())
	reqLog.Warn().Msg("bearer token rejected")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "bearer token rejected", entry["message"])
}

func TestFromContext_Fallback(t *testing.T) {
	var buf bytes.Buffer
	fallback := New(Options{Output: &buf})

	reqLog := FromContext(context.Background(), fallback)
	reqLog.Info().Msg("no request")

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "request_id")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

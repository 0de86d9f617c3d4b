// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

func TestNewLoggerTo_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "contacts-server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "contacts-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestWithLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
	}{
		{name: "empty keeps debug", level: "", wantDebug: true},
		{name: "info drops debug", level: "info", wantDebug: false},
		{name: "unknown keeps debug", level: "loud", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLoggerTo(&buf, "lvl").WithLevel(tt.level)
			buf.Reset()

			l.Debug().Msg("debug line")

			if tt.wantDebug {
				assert.Contains(t, buf.String(), "debug line")
			} else {
				assert.NotContains(t, buf.String(), "debug line")
			}
		})
	}
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "trace")

	ctx, child := l.WithTraceID(context.Background(), "abc-123")
	require.NotNil(t, child)

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "abc-123", decodeEntry(t, &buf)[TraceIDField])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(context.Background()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}

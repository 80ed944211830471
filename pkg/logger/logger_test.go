package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantErr, err != nil, tt.in)
	}
}

func TestInit(t *testing.T) {
	defer Set(nil)

	require.NoError(t, Init("debug", "production"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", "development"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	id := NewRequestID()
	assert.Len(t, id, 36)
	assert.Equal(t, id, RequestID(WithRequestID(ctx, id)))
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	defer Set(nil)

	WithContext(WithRequestID(context.Background(), "req-1")).Info("computed")
	Info("plain", Int("bars", 3))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["bars"])
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug", "json"))
	require.NotNil(t, Log)
	require.True(t, GetZapLogger().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", "text"))
	require.False(t, GetZapLogger().Core().Enabled(zapcore.InfoLevel))

	require.Error(t, Init("loud", "text"))
}

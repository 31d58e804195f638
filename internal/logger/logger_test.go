package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		debugOn   bool
		warnOn    bool
		wantError bool
	}{
		{name: "local defaults to debug", cfg: config.Config{Env: "local"}, debugOn: true, warnOn: true},
		{name: "production defaults to info", cfg: config.Config{Env: "production"}, debugOn: false, warnOn: true},
		{name: "level override", cfg: config.Config{Env: "local", LogLevel: "error"}, debugOn: false, warnOn: false},
		{name: "invalid level", cfg: config.Config{Env: "local", LogLevel: "loud"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, err := New(&tt.cfg)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.debugOn, lg.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.warnOn, lg.Core().Enabled(zap.WarnLevel))
		})
	}
}

package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"github.com/sergeii/sg41/cmd/sg41/logging"
)

func TestProvide(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		wantLvl zerolog.Level
		wantErr error
	}{
		{
			"console/info",
			logging.Config{LogOutput: "console", LogLevel: "info"},
			zerolog.InfoLevel,
			nil,
		},
		{
			"default output",
			logging.Config{LogLevel: "debug"},
			zerolog.DebugLevel,
			nil,
		},
		{
			"json/error",
			logging.Config{LogOutput: "json", LogLevel: "error"},
			zerolog.ErrorLevel,
			nil,
		},
		{
			"stdout/panic",
			logging.Config{LogOutput: "stdout", LogLevel: "panic"},
			zerolog.PanicLevel,
			nil,
		},
		{
			"stderr/warn",
			logging.Config{LogOutput: "stderr", LogLevel: "warn"},
			zerolog.WarnLevel,
			nil,
		},
		{
			"level is case insensitive",
			logging.Config{LogOutput: "stdout", LogLevel: "INFO"},
			zerolog.InfoLevel,
			nil,
		},
		{
			"invalid level",
			logging.Config{LogOutput: "stdout", LogLevel: "critical"},
			zerolog.NoLevel,
			logging.ErrInvalidLogLevel,
		},
		{
			"invalid output",
			logging.Config{LogOutput: "text", LogLevel: "warn"},
			zerolog.NoLevel,
			logging.ErrInvalidLogOutput,
		},
		{
			"invalid output and level",
			logging.Config{LogOutput: "out", LogLevel: "debug2"},
			zerolog.NoLevel,
			logging.ErrInvalidLogLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := logging.Provide(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result.Logger)
			assert.Equal(t, tt.wantLvl, result.LogLevel)
		})
	}
}

func TestFxLogger(t *testing.T) {
	logger := zerolog.Nop()
	assert.Equal(t, fxevent.NopLogger, logging.FxLogger(&logger, zerolog.InfoLevel))
	assert.IsType(t, &fxevent.ConsoleLogger{}, logging.FxLogger(&logger, zerolog.DebugLevel))
}

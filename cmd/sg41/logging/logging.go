package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/sergeii/sg41/pkg/logutils"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unknown output format")
	ErrInvalidLogLevel  = errors.New("logging: unknown level")
)

type Config struct {
	LogOutput string
	LogLevel  string
}

type Result struct {
	fx.Out

	Logger   *zerolog.Logger
	LogLevel zerolog.Level
}

func Provide(cfg Config) (Result, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Result{}, ErrInvalidLogLevel
	}
	zerolog.SetGlobalLevel(lvl)

	output, err := makeWriter(cfg.LogOutput)
	if err != nil {
		return Result{}, err
	}

	logger := zerolog.New(output).With().Timestamp().Caller().Logger()

	return Result{
		Logger:   &logger,
		LogLevel: lvl,
	}, nil
}

func makeWriter(output string) (io.Writer, error) {
	switch output {
	case "console", "":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, nil
	case "stdout":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "stderr":
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "json":
		return os.Stderr, nil
	default:
		return nil, ErrInvalidLogOutput
	}
}

// NoGlobal silences the package level logger so that every message goes through the injected one.
func NoGlobal() {
	log.Logger = zerolog.Nop()
}

func FxLogger(logger *zerolog.Logger, lvl zerolog.Level) fxevent.Logger {
	switch lvl { // nolint: exhaustive
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return &fxevent.ConsoleLogger{
			W: logger,
		}
	default:
		return fxevent.NopLogger
	}
}

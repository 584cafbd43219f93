package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/sg41/cmd/sg41/application"
	"github.com/sergeii/sg41/cmd/sg41/commander"
	"github.com/sergeii/sg41/cmd/sg41/components/api"
	"github.com/sergeii/sg41/cmd/sg41/components/exporter"
	"github.com/sergeii/sg41/cmd/sg41/components/observer"
	"github.com/sergeii/sg41/cmd/sg41/logging"
	"github.com/sergeii/sg41/cmd/sg41/persistence"
	"github.com/sergeii/sg41/internal/settings"
)

// @title        SG-41 API
// @version      1.0
// @description  Encrypt and decrypt messages on the SG-41 cipher machine with stored keys.
// @BasePath     /
func main() {
	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("sg41"),
		kong.Description("Siemens & Halske SG-41 cipher machine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			KeyboardShift:   cli.Globals.KeyboardShift,
			KeyCacheTTL:     cli.Globals.KeyCacheTTL,
			JournalSize:     cli.Globals.JournalSize,
			JournalLimit:    cli.Globals.JournalLimit,
			WheelsetWorkers: cli.Globals.WheelsetWorkers,
			WheelsetTimeout: cli.Globals.WheelsetTimeout,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPPath:            cli.Globals.ExporterHTTPPath,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

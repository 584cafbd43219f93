package observer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/sg41/cmd/sg41/application"
	"github.com/sergeii/sg41/cmd/sg41/commander"
	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/internal/metrics/observers/keyobserver"
	"github.com/sergeii/sg41/internal/metrics/observers/messageobserver"
)

type Config struct {
	ObserveInterval time.Duration
}

type Component struct{}

func run(
	stop chan struct{},
	stopped chan struct{},
	clock clockwork.Clock,
	logger *zerolog.Logger,
	collector *metrics.Collector,
	cfg Config,
) {
	ticker := clock.NewTicker(cfg.ObserveInterval)
	tickerCh := ticker.Chan()
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info().Dur("interval", cfg.ObserveInterval).Msg("Starting observer")

	// observe right away so that the gauges are not empty until the first tick
	collector.Observe(ctx)

	for {
		select {
		case <-stop:
			close(stopped)
			return
		case <-tickerCh:
			collector.Observe(ctx)
		}
	}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *Component {
	stopped := make(chan struct{})
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(stop, stopped, clock, logger, collector, cfg) // nolint: contextcheck
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			<-stopped
			logger.Info().Msg("Observer stopped")
			return nil
		},
	})

	return &Component{}
}

type command struct {
	MetricObserveInterval time.Duration `default:"10s" help:"Sets how often the size of the key store and the journal is measured"` // nolint:lll
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				ObserveInterval: c.MetricObserveInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Observer command `cmd:"" help:"Start observer"`
}

var Module = fx.Module("observer",
	fx.Invoke(
		keyobserver.New,
		messageobserver.New,
	),
	fx.Provide(New),
)

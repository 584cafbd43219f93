package exporter

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/sg41/internal/metrics"
	"github.com/sergeii/sg41/pkg/http/httpserver"
)

const defaultPath = "/metrics"

type Config struct {
	HTTPListenAddress   string
	HTTPPath            string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
}

type Component struct {
	addr net.Addr
}

// Addr is the address the exporter listens on once the application has started.
func (c *Component) Addr() net.Addr {
	return c.addr
}

func newHandler(collector *metrics.Collector, path string) http.Handler {
	if path == "" {
		path = defaultPath
	}
	registry := collector.GetRegistry()
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	))
	return mux
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg Config,
	logger *zerolog.Logger,
	collector *metrics.Collector,
) (*Component, error) {
	component := &Component{}

	svr, err := httpserver.New(
		cfg.HTTPListenAddress,
		httpserver.WithShutdownTimeout(cfg.HTTPShutdownTimeout),
		httpserver.WithReadTimeout(cfg.HTTPReadTimeout),
		httpserver.WithWriteTimeout(cfg.HTTPWriteTimeout),
		httpserver.WithHandler(newHandler(collector, cfg.HTTPPath)),
		httpserver.WithReadySignal(func(addr net.Addr) {
			logger.Info().Stringer("addr", addr).Msg("Exporter server is ready to accept connections")
			component.addr = addr
		}),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up exporter server")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exited, startErr := svr.Start(ctx)
			if startErr != nil {
				logger.Error().Err(startErr).Msg("Failed to start Exporter server")
				return startErr
			}
			go func() {
				if serveErr := <-exited; serveErr != nil {
					logger.Warn().Err(serveErr).Msg("Exporter server exited prematurely")
					if shutErr := shutdowner.Shutdown(); shutErr != nil {
						logger.Error().Err(shutErr).Msg("Failed to handle premature Exporter server shutdown")
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if stopErr := svr.Stop(stopCtx); stopErr != nil {
				logger.Error().Err(stopErr).Msg("Failed to stop exporter server gracefully")
				return stopErr
			}
			logger.Info().Msg("Exporter server stopped")
			return nil
		},
	})

	return component, nil
}

var Module = fx.Module("exporter",
	fx.Provide(New),
)

package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RedisURL string
}

func Provide(lc fx.Lifecycle, cfg Config, logger *zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
				logger.Error().Err(pingErr).Str("addr", opts.Addr).Msg("Unable to connect to redis")
				return pingErr
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}

package testapp

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/sg41/cmd/sg41/application"
	"github.com/sergeii/sg41/cmd/sg41/components/api"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/settings"
)

func ProvidePersistence(lc fx.Lifecycle) (*redis.Client, error) {
	mr, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			defer mr.Close()
			return rdb.Close()
		},
	})

	return rdb, nil
}

func ProvideSettings() settings.Settings {
	return settings.Settings{
		KeyboardShift:   "JJ",
		KeyCacheTTL:     time.Minute,
		JournalSize:     100,
		JournalLimit:    50,
		WheelsetWorkers: 2,
		WheelsetTimeout: time.Second * 10,
	}
}

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type Repositories struct {
	Keys     repositories.KeyRepository
	Messages repositories.MessageRepository
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, Repositories, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	var repos Repositories
	fxopts := []fx.Option{
		fx.Provide(ProvideSettings),
		fx.Provide(ProvidePersistence),
		fx.Provide(NoLogging),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router, &repos.Keys, &repos.Messages),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, repos, func() {
		defer app.RequireStop()
		defer ts.Close()
	}
}

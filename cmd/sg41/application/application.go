package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/sergeii/sg41/cmd/sg41/components/exporter"
	"github.com/sergeii/sg41/cmd/sg41/container"
	"github.com/sergeii/sg41/cmd/sg41/logging"
	"github.com/sergeii/sg41/internal/core/repositories"
	"github.com/sergeii/sg41/internal/metrics"
	cachedkeys "github.com/sergeii/sg41/internal/persistence/cache/keys"
	"github.com/sergeii/sg41/internal/persistence/redis/repositories/keys"
	"github.com/sergeii/sg41/internal/persistence/redis/repositories/messages"
	"github.com/sergeii/sg41/internal/settings"
	"github.com/sergeii/sg41/internal/validation"
)

type Repositories struct {
	fx.Out

	Keys     repositories.KeyRepository
	Messages repositories.MessageRepository
}

func provideRepositories(rdb *redis.Client, s settings.Settings) Repositories {
	var keyRepo repositories.KeyRepository = keys.New(rdb)
	if s.KeyCacheTTL > 0 {
		keyRepo = cachedkeys.New(keyRepo, cachedkeys.Opts{TTL: s.KeyCacheTTL})
	}
	return Repositories{
		Keys:     keyRepo,
		Messages: messages.New(rdb, messages.Opts{Capacity: s.JournalSize}),
	}
}

func checkSettings(validate *validator.Validate, s settings.Settings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Invoke(checkSettings),
	fx.Provide(provideRepositories),
	fx.Provide(metrics.New),
	container.Module,
)

package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/sg41/internal/core/usecases/addkey"
	"github.com/sergeii/sg41/internal/core/usecases/cryptmessage"
	"github.com/sergeii/sg41/internal/core/usecases/generatekey"
	"github.com/sergeii/sg41/internal/core/usecases/getkey"
	"github.com/sergeii/sg41/internal/core/usecases/listkeys"
	"github.com/sergeii/sg41/internal/core/usecases/listmessages"
	"github.com/sergeii/sg41/internal/core/usecases/recoverindicator"
	"github.com/sergeii/sg41/internal/core/usecases/removekey"
	"github.com/sergeii/sg41/internal/settings"
)

type Container struct {
	AddKey           addkey.UseCase
	GenerateKey      generatekey.UseCase
	GetKey           getkey.UseCase
	ListKeys         listkeys.UseCase
	RemoveKey        removekey.UseCase
	CryptMessage     cryptmessage.UseCase
	ListMessages     listmessages.UseCase
	RecoverIndicator recoverindicator.UseCase
}

func New(
	addKeyUseCase addkey.UseCase,
	generateKeyUseCase generatekey.UseCase,
	getKeyUseCase getkey.UseCase,
	listKeysUseCase listkeys.UseCase,
	removeKeyUseCase removekey.UseCase,
	cryptMessageUseCase cryptmessage.UseCase,
	listMessagesUseCase listmessages.UseCase,
	recoverIndicatorUseCase recoverindicator.UseCase,
) Container {
	return Container{
		AddKey:           addKeyUseCase,
		GenerateKey:      generateKeyUseCase,
		GetKey:           getKeyUseCase,
		ListKeys:         listKeysUseCase,
		RemoveKey:        removeKeyUseCase,
		CryptMessage:     cryptMessageUseCase,
		ListMessages:     listMessagesUseCase,
		RecoverIndicator: recoverIndicatorUseCase,
	}
}

type UseCaseOpts struct {
	fx.Out

	CryptMessage     cryptmessage.UseCaseOpts
	ListMessages     listmessages.UseCaseOpts
	RecoverIndicator recoverindicator.UseCaseOpts
}

func provideUseCaseOpts(s settings.Settings) UseCaseOpts {
	return UseCaseOpts{
		CryptMessage: cryptmessage.UseCaseOpts{
			KeyboardShift: s.KeyboardShift,
		},
		ListMessages: listmessages.UseCaseOpts{
			MaxLimit: s.JournalLimit,
		},
		RecoverIndicator: recoverindicator.UseCaseOpts{
			Workers: s.WheelsetWorkers,
			Timeout: s.WheelsetTimeout,
		},
	}
}

var Module = fx.Module("container",
	fx.Provide(fx.Private, provideUseCaseOpts),
	fx.Provide(addkey.New),
	fx.Provide(generatekey.New),
	fx.Provide(getkey.New),
	fx.Provide(listkeys.New),
	fx.Provide(removekey.New),
	fx.Provide(cryptmessage.New),
	fx.Provide(listmessages.New),
	fx.Provide(recoverindicator.New),
	fx.Provide(New),
)

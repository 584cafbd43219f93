package api

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/sg41/cmd/sg41/container"
	"github.com/sergeii/sg41/internal/settings"
)

type API struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		settings:  settings,
		logger:    logger,
	}
}

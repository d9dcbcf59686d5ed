package main

import (
	"go.uber.org/dig"

	"github.com/gitmod-io/gitmod/internal"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/infrastructure/controllers"
)

func injectAppContext(
	settings *entities.Settings,
	version controllers.Version,
) *internal.AppInternal {
	container := dig.New()

	// Runtime values resolved before injection
	if err := container.Provide(func() *entities.Settings { return settings }); err != nil {
		panic(err)
	}
	if err := container.Provide(func() controllers.Version { return version }); err != nil {
		panic(err)
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

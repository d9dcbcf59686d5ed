package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings requires a config file path, so it is provided by the entrypoint.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewOutputSink)
}

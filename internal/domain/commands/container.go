package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewCacheStore,
		NewWorkingTreeGuard,
		NewSubmoduleRegistrar,
		NewInstallCommand,
		NewUninstallCommand,
		NewListCommand,
		NewCacheScanner,
		NewSearchCommand,
		NewSelfUpdateCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *InstallCommand) Install { return impl },
		func(impl *UninstallCommand) Uninstall { return impl },
		func(impl *ListCommand) List { return impl },
		func(impl *CacheScanner) Scan { return impl },
		func(impl *SearchCommand) Search { return impl },
		func(impl *SelfUpdateCommand) SelfUpdate { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}

package controllers

import (
	"go.uber.org/dig"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// Version is the build version injected into controllers that report it.
type Version string

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewInstallController,
		NewUninstallController,
		NewListController,
		NewCacheController,
		NewSearchController,
		NewSelfUpdateController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	installController *InstallController,
	uninstallController *UninstallController,
	listController *ListController,
	cacheController *CacheController,
	searchController *SearchController,
	selfUpdateController *SelfUpdateController,
) *[]entities.Controller {
	return &[]entities.Controller{
		installController,
		uninstallController,
		listController,
		cacheController,
		searchController,
		selfUpdateController,
	}
}

package repositories

import (
	"go.uber.org/dig"

	"github.com/gitmod-io/gitmod/internal/infrastructure/repositories/gitcli"
	"github.com/gitmod-io/gitmod/internal/infrastructure/repositories/github"
	"github.com/gitmod-io/gitmod/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all infrastructure repositories with the DIG
// container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(gogit.NewCacheRepository); err != nil {
		return err
	}
	if err := container.Provide(gitcli.NewProjectRepository); err != nil {
		return err
	}
	if err := container.Provide(github.NewSearchRepository); err != nil {
		return err
	}
	return nil
}

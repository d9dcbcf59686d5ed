package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// Install is the interface for the install command.
type Install interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InstallOptions) error
}

// InstallOptions holds runtime options for a single install.
type InstallOptions struct {
	ProjectDir string
	Module     string // raw owner/name argument
	Branch     string // empty means the default branch
}

// InstallCommand runs the install sequence: guard the working tree, ensure
// the cache entry, register the submodule. Each stage either completes or
// aborts the whole command; there is no partial success.
type InstallCommand struct {
	guard     *WorkingTreeGuard
	store     *CacheStore
	registrar *SubmoduleRegistrar
}

// NewInstallCommand creates a new InstallCommand from its collaborators.
func NewInstallCommand(
	guard *WorkingTreeGuard,
	store *CacheStore,
	registrar *SubmoduleRegistrar,
) *InstallCommand {
	return &InstallCommand{guard: guard, store: store, registrar: registrar}
}

// Execute installs one module into the project.
func (it *InstallCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts InstallOptions,
) error {
	id, err := entities.ParseModuleID(opts.Module)
	if err != nil {
		return err
	}

	branch := opts.Branch
	if branch == "" {
		branch = entities.DefaultBranch
	}

	// A dirty tree aborts before anything else is touched.
	if guardErr := it.guard.CheckClean(ctx, opts.ProjectDir); guardErr != nil {
		return guardErr
	}

	entry, ensureErr := it.store.Ensure(ctx, settings, id)
	if ensureErr != nil {
		return ensureErr
	}

	outcome, registerErr := it.registrar.Register(
		ctx, opts.ProjectDir, id, branch, entry.Path, settings.ModulesLocal,
	)
	if registerErr != nil {
		// The cache entry survives for the next attempt; only the
		// project-side registration failed.
		return fmt.Errorf("install of %s aborted: %w", id, registerErr)
	}

	logger.Infof("Installed %s@%s (%s)", id, branch, outcome)
	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// Uninstall is the interface for the uninstall command.
type Uninstall interface {
	Execute(ctx context.Context, settings *entities.Settings, opts UninstallOptions) error
}

// UninstallOptions holds runtime options for a single uninstall.
type UninstallOptions struct {
	ProjectDir string
	Module     string
}

// UninstallCommand deregisters a submodule and removes its tracking metadata
// from the project. The machine-wide cache entry is deliberately untouched:
// other projects may still install from it.
type UninstallCommand struct {
	project repositories.ProjectRepository
}

// NewUninstallCommand creates a new UninstallCommand.
func NewUninstallCommand(project repositories.ProjectRepository) *UninstallCommand {
	return &UninstallCommand{project: project}
}

// Execute removes one module from the project. Removing a module that was
// never installed is reported as entities.ErrNotInstalled, not a silent
// success.
func (it *UninstallCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts UninstallOptions,
) error {
	id, err := entities.ParseModuleID(opts.Module)
	if err != nil {
		return err
	}
	path := id.LocalPath(settings.ModulesLocal)

	registered, lookupErr := it.isRegistered(ctx, opts.ProjectDir, path)
	if lookupErr != nil {
		return lookupErr
	}
	if !registered {
		return fmt.Errorf("%w: %s", entities.ErrNotInstalled, id)
	}

	// The installed tree is read-only; unlock it so deinit can reset it.
	installed := filepath.Join(opts.ProjectDir, path)
	if unlockErr := makeWritable(installed); unlockErr != nil && !os.IsNotExist(unlockErr) {
		logger.Warnf("Could not unlock %s before removal: %v", path, unlockErr)
	}

	if deinitErr := it.project.SubmoduleDeinit(ctx, opts.ProjectDir, path); deinitErr != nil {
		return fmt.Errorf("failed to deinit %s: %w", path, deinitErr)
	}
	if removeErr := it.project.SubmoduleDeregister(ctx, opts.ProjectDir, path); removeErr != nil {
		return fmt.Errorf("failed to deregister %s: %w", path, removeErr)
	}

	// Reconcile the remaining submodules with the working tree.
	if updateErr := it.project.SubmoduleUpdate(ctx, opts.ProjectDir, ""); updateErr != nil {
		return fmt.Errorf("failed to reconcile submodules: %w", updateErr)
	}

	message := fmt.Sprintf("Uninstall module %s", id)
	if commitErr := it.project.CommitAll(ctx, opts.ProjectDir, message); commitErr != nil &&
		!errors.Is(commitErr, entities.ErrNothingToCommit) {
		logger.Warnf("Removed %s but could not commit, commit manually: %v", id, commitErr)
	}

	logger.Infof("Uninstalled %s", id)
	return nil
}

func (it *UninstallCommand) isRegistered(
	ctx context.Context,
	projectDir, path string,
) (bool, error) {
	submodules, err := it.project.Submodules(ctx, projectDir)
	if err != nil {
		return false, fmt.Errorf("failed to enumerate submodules: %w", err)
	}
	for _, submodule := range submodules {
		if submodule.Path == path {
			return true, nil
		}
	}
	return false, nil
}

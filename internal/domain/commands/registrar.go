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

// SubmoduleRegistrar binds a cache entry into the project as a read-only
// submodule and commits the registration.
type SubmoduleRegistrar struct {
	project repositories.ProjectRepository
}

// NewSubmoduleRegistrar creates a new SubmoduleRegistrar.
func NewSubmoduleRegistrar(project repositories.ProjectRepository) *SubmoduleRegistrar {
	return &SubmoduleRegistrar{project: project}
}

// Register adds the submodule at <modulesLocal>/<id>, sourced from cachePath
// and tracking branch. A path that is already registered is not an error: it
// is redirected into a recursive submodule update. Either way the installed
// tree ends up write-protected and the change committed; an empty commit is
// tolerated.
func (it *SubmoduleRegistrar) Register(
	ctx context.Context,
	projectDir string,
	id entities.ModuleID,
	branch, cachePath, modulesLocal string,
) (entities.RegistrationOutcome, error) {
	path := id.LocalPath(modulesLocal)
	installed := filepath.Join(projectDir, path)
	outcome := entities.RegistrationAdded

	// The submodule's own uncommitted state must never make the parent
	// project look dirty.
	if err := it.project.SetSubmoduleIgnoreDirty(ctx, projectDir, path); err != nil {
		return outcome, fmt.Errorf("failed to set ignore policy for %s: %w", path, err)
	}

	addErr := it.project.SubmoduleAdd(ctx, projectDir, path, cachePath, branch)
	switch {
	case addErr == nil:
		logger.Infof("Registered %s at %s (branch %s)", id, path, branch)
	case errors.Is(addErr, entities.ErrAlreadyRegistered):
		outcome = entities.RegistrationUpdated
		logger.Infof("%s is already registered, updating instead", id)
		// The previous install left the tree read-only. A missing tree is
		// fine, the update pass recreates it.
		if err := makeWritable(installed); err != nil && !os.IsNotExist(err) {
			return outcome, fmt.Errorf("failed to unlock %s for update: %w", path, err)
		}
		if err := it.project.SubmoduleUpdate(ctx, projectDir, path); err != nil {
			return outcome, fmt.Errorf("failed to update submodule %s: %w", path, err)
		}
	default:
		return outcome, fmt.Errorf("failed to add submodule %s: %w", path, addErr)
	}

	if err := makeReadOnly(installed); err != nil && !os.IsNotExist(err) {
		return outcome, fmt.Errorf("failed to write-protect %s: %w", path, err)
	}

	// Commit is best-effort: the submodule may already have been at HEAD.
	message := fmt.Sprintf("Install module %s (branch %s)", id, branch)
	if commitErr := it.project.CommitAll(ctx, projectDir, message); commitErr != nil {
		if errors.Is(commitErr, entities.ErrNothingToCommit) {
			logger.Debugf("No changes to commit for %s", id)
		} else {
			logger.Warnf("Registered %s but could not commit, commit manually: %v", id, commitErr)
		}
	}

	return outcome, nil
}

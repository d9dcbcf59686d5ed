package repositories

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// ProjectRepository abstracts the version-control operations performed inside
// the host project: cleanliness checks, submodule registration and removal,
// and commits. Implementations return the typed signals in entities
// (ErrAlreadyRegistered, ErrNothingToCommit, ...) instead of exposing raw
// exit codes.
type ProjectRepository interface {
	// IsClean reports whether the project working tree at dir has no
	// uncommitted changes, tracked or untracked. The tool's own log file
	// is not counted.
	IsClean(ctx context.Context, dir string) (bool, error)

	// SetSubmoduleIgnoreDirty configures the submodule at path so its
	// internal uncommitted state never makes the parent appear dirty.
	SetSubmoduleIgnoreDirty(ctx context.Context, dir, path string) error

	// SubmoduleAdd registers a new submodule at path, sourced from source
	// and tracking branch. A path that is already registered is reported
	// as entities.ErrAlreadyRegistered.
	SubmoduleAdd(ctx context.Context, dir, path, source, branch string) error

	// SubmoduleUpdate runs a recursive submodule synchronization for path
	// ("" updates everything).
	SubmoduleUpdate(ctx context.Context, dir, path string) error

	// SubmoduleDeinit forcibly deinitializes the submodule at path,
	// discarding any submodule-level changes.
	SubmoduleDeinit(ctx context.Context, dir, path string) error

	// SubmoduleDeregister removes the registration (working tree entry and
	// index gitlink) for path.
	SubmoduleDeregister(ctx context.Context, dir, path string) error

	// Submodules enumerates every registered submodule, recursively, in
	// the tool's own traversal order.
	Submodules(ctx context.Context, dir string) ([]entities.Submodule, error)

	// CommitAll stages everything and commits with the given message. A
	// clean tree is reported as entities.ErrNothingToCommit.
	CommitAll(ctx context.Context, dir, message string) error
}

package entities

import "errors"

// Typed failure categories. External-tool wrappers map their raw results onto
// these so callers never branch on process exit codes.
var (
	// ErrInvalidModuleID means the identifier is not of the form "owner/name".
	ErrInvalidModuleID = errors.New("invalid module identifier")

	// ErrDirtyWorkingTree means the project has uncommitted changes and no
	// mutating operation may proceed.
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")

	// ErrUnreachableRepository means a clone failed because the remote does
	// not exist or could not be contacted.
	ErrUnreachableRepository = errors.New("repository unreachable (offline or non-existent)")

	// ErrNotInstalled means the module is not registered as a submodule in
	// the current project.
	ErrNotInstalled = errors.New("module is not installed in this project")

	// ErrAlreadyRegistered is the signal (not a failure) that a submodule
	// path is already tracked; install redirects it into the update path.
	ErrAlreadyRegistered = errors.New("submodule path already registered")

	// ErrNothingToCommit is the non-fatal signal that a commit was a no-op.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrMissingGit means the external git binary is unavailable.
	ErrMissingGit = errors.New("the 'git' binary is required but was not found in PATH")

	// ErrNotARepository means the given directory is not a git working tree.
	ErrNotARepository = errors.New("not a git repository")

	// ErrCacheLocked means another process holds the per-entry cache lock.
	ErrCacheLocked = errors.New("cache entry is locked by another process")
)

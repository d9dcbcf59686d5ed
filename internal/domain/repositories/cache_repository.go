// Package repositories declares the interfaces the domain commands depend on.
// Implementations live under internal/infrastructure/repositories and map the
// raw results of external capabilities onto the typed errors in entities.
package repositories

import "context"

// CacheRepository abstracts the version-control operations the cache needs.
// Every call takes an explicit target directory; implementations must never
// rely on the process working directory.
type CacheRepository interface {
	// CloneShallow performs a depth-1, recursively-resolved clone of url
	// into dir. An unreachable or non-existent remote is reported as
	// entities.ErrUnreachableRepository; the implementation must not leave
	// a partial clone behind on failure.
	CloneShallow(ctx context.Context, url, dir string) error

	// Refresh pulls the default remote into the clone at dir. A no-op
	// (already up to date) is a nil return.
	Refresh(ctx context.Context, dir string) error

	// TrackRemoteBranches creates a local branch tracking every remote
	// branch of the clone at dir, excluding the symbolic default pointer
	// and the literal HEAD marker. It returns the branch names created.
	TrackRemoteBranches(dir string) ([]string, error)

	// IsRepository reports whether dir is the root of a repository.
	IsRepository(dir string) bool

	// LatestTag returns the highest semantic-version tag of the clone at
	// dir, or "" when it has no version tags.
	LatestTag(dir string) (string, error)
}

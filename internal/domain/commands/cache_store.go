package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	logger "github.com/sirupsen/logrus"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

const lockRetryInterval = 250 * time.Millisecond

// CacheStore owns the machine-wide cache of dependency clones. The first
// install of a module anywhere on the machine clones it; every later install,
// from any project, reuses the same directory.
type CacheStore struct {
	cache repositories.CacheRepository
}

// NewCacheStore creates a new CacheStore backed by the given repository.
func NewCacheStore(cache repositories.CacheRepository) *CacheStore {
	return &CacheStore{cache: cache}
}

// Ensure makes the cache entry for id present and as fresh as the network
// allows. A missing entry is cloned (shallow, recursive); an existing entry
// is refreshed best-effort; a failed pull degrades to the stale copy.
// Concurrent installs of the same module are serialized by an advisory lock
// next to the entry.
func (it *CacheStore) Ensure(
	ctx context.Context,
	settings *entities.Settings,
	id entities.ModuleID,
) (entities.CacheEntry, error) {
	entry := entities.CacheEntry{ID: id, Path: id.CachePath(settings.CacheHome)}

	// No usable cache root means no usable installs at all.
	if err := os.MkdirAll(filepath.Dir(entry.Path), 0o755); err != nil {
		return entry, fmt.Errorf("failed to create cache directory: %w", err)
	}

	unlock, err := it.lockEntry(ctx, entry.Path)
	if err != nil {
		return entry, err
	}
	defer unlock()

	if it.cache.IsRepository(entry.Path) {
		if refreshErr := it.cache.Refresh(ctx, entry.Path); refreshErr != nil {
			// Degraded, not fatal: install proceeds against the stale copy.
			logger.Infof("Could not refresh %s, using cached version: %v", id, refreshErr)
			entry.Stale = true
		}
		return entry, nil
	}

	url := id.CloneURL(settings.Protocol, settings.Host)
	logger.Infof("Cloning %s into cache...", url)
	if cloneErr := it.cache.CloneShallow(ctx, url, entry.Path); cloneErr != nil {
		return entry, fmt.Errorf("failed to clone %s: %w", id, cloneErr)
	}
	entry.Cloned = true

	branches, trackErr := it.cache.TrackRemoteBranches(entry.Path)
	if trackErr != nil {
		return entry, fmt.Errorf("failed to track remote branches of %s: %w", id, trackErr)
	}
	entry.TrackedBranches = branches
	logger.Debugf("Tracking %d remote branches of %s", len(branches), id)

	return entry, nil
}

// lockEntry takes the per-entry advisory lock, waiting until it is free or
// the context expires.
func (it *CacheStore) lockEntry(ctx context.Context, entryPath string) (func(), error) {
	lock := flock.New(entryPath + ".lock")

	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrCacheLocked, entryPath)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", entities.ErrCacheLocked, entryPath)
	}

	return func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warnf("Failed to release cache lock %s: %v", lock.Path(), unlockErr)
		}
	}, nil
}

//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock
// frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// SpyCacheRepository implements repositories.CacheRepository as a
// configurable spy.
type SpyCacheRepository struct {
	// --- CloneShallow ---
	CloneErr   error
	ClonedURLs []string
	ClonedDirs []string

	// --- Refresh ---
	RefreshErr    error
	RefreshedDirs []string
	// FailRefreshFor restricts RefreshErr to specific directories.
	FailRefreshFor map[string]bool

	// --- TrackRemoteBranches ---
	Branches    []string
	TrackErr    error
	TrackedDirs []string

	// --- IsRepository ---
	Repositories map[string]bool

	// --- LatestTag ---
	Tag    string
	TagErr error
}

var _ repositories.CacheRepository = (*SpyCacheRepository)(nil)

func (c *SpyCacheRepository) CloneShallow(_ context.Context, url, dir string) error {
	if c.CloneErr != nil {
		return c.CloneErr
	}
	c.ClonedURLs = append(c.ClonedURLs, url)
	c.ClonedDirs = append(c.ClonedDirs, dir)
	if c.Repositories == nil {
		c.Repositories = make(map[string]bool)
	}
	c.Repositories[dir] = true
	return nil
}

func (c *SpyCacheRepository) Refresh(_ context.Context, dir string) error {
	if c.RefreshErr != nil && (c.FailRefreshFor == nil || c.FailRefreshFor[dir]) {
		return c.RefreshErr
	}
	c.RefreshedDirs = append(c.RefreshedDirs, dir)
	return nil
}

func (c *SpyCacheRepository) TrackRemoteBranches(dir string) ([]string, error) {
	if c.TrackErr != nil {
		return nil, c.TrackErr
	}
	c.TrackedDirs = append(c.TrackedDirs, dir)
	return c.Branches, nil
}

func (c *SpyCacheRepository) IsRepository(dir string) bool {
	return c.Repositories[dir]
}

func (c *SpyCacheRepository) LatestTag(_ string) (string, error) {
	return c.Tag, c.TagErr
}

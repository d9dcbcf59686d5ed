//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	doubles "github.com/gitmod-io/gitmod/test/infrastructure/repositorydoubles"
)

// buildCacheTree creates a cache layout with repositories nested under
// namespace folders and returns the leaf paths.
func buildCacheTree(t *testing.T, root string) []string {
	t.Helper()
	leaves := []string{
		filepath.Join(root, "acme", "widgets"),
		filepath.Join(root, "acme", "tools", "helper"),
		filepath.Join(root, "zorg", "lib"),
	}
	for _, leaf := range leaves {
		require.NoError(t, os.MkdirAll(leaf, 0o755))
	}
	return leaves
}

func scannerSettings(root string) *entities.Settings {
	return &entities.Settings{CacheHome: root, ModulesLocal: "modules", Protocol: "git", Host: "github.com"}
}

func TestCacheScannerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report an empty cache root as zero leaves", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := commands.NewCacheScanner(&doubles.SpyCacheRepository{})
		settings := scannerSettings(filepath.Join(t.TempDir(), "never-created"))

		// when
		report, err := scanner.Execute(context.Background(), settings, false)

		// then
		require.NoError(t, err)
		assert.Zero(t, report.Count())
	})

	t.Run("should count each repository leaf exactly once regardless of depth", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		leaves := buildCacheTree(t, root)
		repositories := make(map[string]bool, len(leaves))
		for _, leaf := range leaves {
			repositories[leaf] = true
		}
		scanner := commands.NewCacheScanner(&doubles.SpyCacheRepository{Repositories: repositories})

		// when
		report, err := scanner.Execute(context.Background(), scannerSettings(root), false)

		// then
		require.NoError(t, err)
		assert.Equal(t, len(leaves), report.Count())
		seen := make(map[string]int)
		for _, entry := range report.Entries {
			seen[entry.Path]++
		}
		for _, leaf := range leaves {
			assert.Equal(t, 1, seen[leaf], "leaf %s must be visited exactly once", leaf)
		}
	})

	t.Run("should terminate on a symlink cycle", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		leaves := buildCacheTree(t, root)
		require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))
		repositories := map[string]bool{leaves[0]: true, leaves[1]: true, leaves[2]: true}
		scanner := commands.NewCacheScanner(&doubles.SpyCacheRepository{Repositories: repositories})

		// when
		report, err := scanner.Execute(context.Background(), scannerSettings(root), false)

		// then
		require.NoError(t, err)
		assert.Equal(t, len(leaves), report.Count())
	})

	t.Run("should refresh each leaf and keep failures non-fatal", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		leaves := buildCacheTree(t, root)
		repositories := map[string]bool{leaves[0]: true, leaves[1]: true, leaves[2]: true}
		cache := &doubles.SpyCacheRepository{
			Repositories:   repositories,
			RefreshErr:     errors.New("remote unreachable"),
			FailRefreshFor: map[string]bool{leaves[1]: true},
		}
		scanner := commands.NewCacheScanner(cache)

		// when
		report, err := scanner.Execute(context.Background(), scannerSettings(root), true)

		// then
		require.NoError(t, err)
		assert.Equal(t, len(leaves), report.Count())
		failed := 0
		refreshed := 0
		for _, entry := range report.Entries {
			if entry.RefreshErr != nil {
				failed++
			}
			if entry.Refreshed {
				refreshed++
			}
		}
		assert.Equal(t, 1, failed)
		assert.Equal(t, len(leaves)-1, refreshed)
	})
}

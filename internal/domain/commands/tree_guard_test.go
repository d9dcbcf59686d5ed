//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	doubles "github.com/gitmod-io/gitmod/test/infrastructure/repositorydoubles"
)

func TestWorkingTreeGuardCheckClean(t *testing.T) {
	t.Parallel()

	t.Run("should pass on a clean tree and add the log file to .gitignore", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		guard := commands.NewWorkingTreeGuard(&doubles.SpyProjectRepository{Clean: true})

		// when
		err := guard.CheckClean(context.Background(), projectDir)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
		require.NoError(t, readErr)
		assert.Contains(t, string(data), entities.LogFileName)
	})

	t.Run("should not duplicate the .gitignore entry on repeated runs", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		guard := commands.NewWorkingTreeGuard(&doubles.SpyProjectRepository{Clean: true})

		// when
		require.NoError(t, guard.CheckClean(context.Background(), projectDir))
		require.NoError(t, guard.CheckClean(context.Background(), projectDir))
		require.NoError(t, guard.CheckClean(context.Background(), projectDir))

		// then
		data, readErr := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
		require.NoError(t, readErr)
		assert.Equal(t, 1, strings.Count(string(data), entities.LogFileName))
	})

	t.Run("should keep existing .gitignore content", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		path := filepath.Join(projectDir, ".gitignore")
		require.NoError(t, os.WriteFile(path, []byte("bin/\n*.tmp"), 0o644))
		guard := commands.NewWorkingTreeGuard(&doubles.SpyProjectRepository{Clean: true})

		// when
		err := guard.CheckClean(context.Background(), projectDir)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(data), "bin/")
		assert.Contains(t, string(data), "*.tmp\n"+entities.LogFileName+"\n")
	})

	t.Run("should report a dirty tree without mutating the project", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		guard := commands.NewWorkingTreeGuard(&doubles.SpyProjectRepository{Clean: false})

		// when
		err := guard.CheckClean(context.Background(), projectDir)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrDirtyWorkingTree)
		_, statErr := os.Stat(filepath.Join(projectDir, ".gitignore"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

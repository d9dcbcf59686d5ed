//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	doubles "github.com/gitmod-io/gitmod/test/infrastructure/repositorydoubles"
)

func TestUninstallCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should refuse to uninstall a module that is not installed", func(t *testing.T) {
		t.Parallel()

		// given
		project := &doubles.SpyProjectRepository{}
		cmd := commands.NewUninstallCommand(project)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), commands.UninstallOptions{
			ProjectDir: t.TempDir(),
			Module:     "acme/widgets",
		})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNotInstalled)
		assert.Empty(t, project.DeinitPaths)
		assert.Empty(t, project.DeregisterPaths)
	})

	t.Run("should deinit, deregister, reconcile, and commit", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		installed := filepath.Join(projectDir, "modules", "acme", "widgets")
		require.NoError(t, os.MkdirAll(installed, 0o755))

		project := &doubles.SpyProjectRepository{
			SubmodulesList: []entities.Submodule{
				{Name: "acme/widgets", Branch: "master", Path: "modules/acme/widgets"},
				{Name: "zorg/lib", Branch: "v1", Path: "modules/zorg/lib"},
			},
		}
		cmd := commands.NewUninstallCommand(project)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), commands.UninstallOptions{
			ProjectDir: projectDir,
			Module:     "acme/widgets",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"modules/acme/widgets"}, project.DeinitPaths)
		assert.Equal(t, []string{"modules/acme/widgets"}, project.DeregisterPaths)
		assert.Equal(t, []string{""}, project.UpdatedPaths, "a full reconcile pass must run")
		require.Len(t, project.CommitMessages, 1)
		assert.Contains(t, project.CommitMessages[0], "acme/widgets")
	})

	t.Run("should tolerate a no-op commit", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		project := &doubles.SpyProjectRepository{
			SubmodulesList: []entities.Submodule{
				{Name: "acme/widgets", Branch: "master", Path: "modules/acme/widgets"},
			},
			CommitErr: entities.ErrNothingToCommit,
		}
		cmd := commands.NewUninstallCommand(project)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), commands.UninstallOptions{
			ProjectDir: projectDir,
			Module:     "acme/widgets",
		})

		// then
		require.NoError(t, err)
	})
}

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

func TestSubmoduleRegistrarRegister(t *testing.T) {
	t.Parallel()

	moduleID := entities.ModuleID{Owner: "acme", Name: "widgets"}

	t.Run("should treat a commit failure as best-effort", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		installed := filepath.Join(projectDir, "modules", "acme", "widgets")
		require.NoError(t, os.MkdirAll(installed, 0o755))
		restoreWrite(t, projectDir)

		project := &doubles.SpyProjectRepository{
			CommitErr: errors.New("hook rejected the commit"),
		}
		registrar := commands.NewSubmoduleRegistrar(project)

		// when
		outcome, err := registrar.Register(
			context.Background(), projectDir, moduleID, "master", "/cache/acme/widgets", "modules",
		)

		// then
		require.NoError(t, err, "the registration itself succeeded")
		assert.Equal(t, entities.RegistrationAdded, outcome)
	})

	t.Run("should take the update path even when the registered tree is missing on disk", func(t *testing.T) {
		t.Parallel()

		// given: registered in git, but the directory was deleted manually
		projectDir := t.TempDir()
		project := &doubles.SpyProjectRepository{AddErr: entities.ErrAlreadyRegistered}
		registrar := commands.NewSubmoduleRegistrar(project)

		// when
		outcome, err := registrar.Register(
			context.Background(), projectDir, moduleID, "master", "/cache/acme/widgets", "modules",
		)

		// then
		require.NoError(t, err, "a repeat install must self-heal the missing tree")
		assert.Equal(t, entities.RegistrationUpdated, outcome)
		assert.Equal(t, []string{"modules/acme/widgets"}, project.UpdatedPaths)
	})

	t.Run("should fail when the submodule add fails for a real reason", func(t *testing.T) {
		t.Parallel()

		// given
		project := &doubles.SpyProjectRepository{
			AddErr: errors.New("permission denied"),
		}
		registrar := commands.NewSubmoduleRegistrar(project)

		// when
		_, err := registrar.Register(
			context.Background(), t.TempDir(), moduleID, "master", "/cache/acme/widgets", "modules",
		)

		// then
		require.Error(t, err)
		assert.Empty(t, project.UpdatedPaths, "a hard failure must not fall into the update path")
	})

	t.Run("should report the update outcome for an already-registered path", func(t *testing.T) {
		t.Parallel()

		// given
		projectDir := t.TempDir()
		installed := filepath.Join(projectDir, "modules", "acme", "widgets")
		require.NoError(t, os.MkdirAll(installed, 0o755))
		restoreWrite(t, projectDir)

		project := &doubles.SpyProjectRepository{AddErr: entities.ErrAlreadyRegistered}
		registrar := commands.NewSubmoduleRegistrar(project)

		// when
		outcome, err := registrar.Register(
			context.Background(), projectDir, moduleID, "master", "/cache/acme/widgets", "modules",
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RegistrationUpdated, outcome)
		assert.Equal(t, "updated", outcome.String())
	})
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	doubles "github.com/gitmod-io/gitmod/test/infrastructure/repositorydoubles"
)

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return every registered submodule in traversal order", func(t *testing.T) {
		t.Parallel()

		// given
		registered := []entities.Submodule{
			{Name: "foo", Branch: "master", Path: "modules/acme/foo"},
			{Name: "bar", Branch: "v1", Path: "modules/acme/bar"},
		}
		cmd := commands.NewListCommand(&doubles.SpyProjectRepository{SubmodulesList: registered})

		// when
		submodules, err := cmd.Execute(context.Background(), "/some/project")

		// then
		require.NoError(t, err)
		assert.Equal(t, registered, submodules, "order must be preserved, not re-sorted")
	})

	t.Run("should report an empty project as zero results, not an error", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewListCommand(&doubles.SpyProjectRepository{})

		// when
		submodules, err := cmd.Execute(context.Background(), "/some/project")

		// then
		require.NoError(t, err)
		assert.Empty(t, submodules)
	})

	t.Run("should propagate enumeration failures", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewListCommand(&doubles.SpyProjectRepository{
			SubmodulesErr: errors.New("broken registration file"),
		})

		// when
		_, err := cmd.Execute(context.Background(), "/some/project")

		// then
		require.Error(t, err)
	})
}

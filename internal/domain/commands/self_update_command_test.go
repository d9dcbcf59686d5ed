//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	doubles "github.com/gitmod-io/gitmod/test/infrastructure/repositorydoubles"
)

func TestSelfUpdateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should clone the distribution repository when it is not cached", func(t *testing.T) {
		t.Parallel()

		// given
		cache := &doubles.SpyCacheRepository{Tag: "v1.2.0"}
		cmd := commands.NewSelfUpdateCommand(commands.NewCacheStore(cache), cache)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), "1.0.0")

		// then
		require.NoError(t, err)
		require.Len(t, cache.ClonedURLs, 1)
		assert.Equal(t, "git://github.com/gitmod-io/gitmod.git", cache.ClonedURLs[0])
	})

	t.Run("should succeed when already on the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		cache := &doubles.SpyCacheRepository{Tag: "v1.2.0"}
		cmd := commands.NewSelfUpdateCommand(commands.NewCacheStore(cache), cache)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), "v1.2.0")

		// then
		require.NoError(t, err)
	})

	t.Run("should succeed when the distribution has no version tags", func(t *testing.T) {
		t.Parallel()

		// given
		cache := &doubles.SpyCacheRepository{}
		cmd := commands.NewSelfUpdateCommand(commands.NewCacheStore(cache), cache)

		// when
		err := cmd.Execute(context.Background(), testSettings(t), "0.0.0-dev")

		// then
		require.NoError(t, err)
	})
}

//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Run("should fall back to working defaults without any configuration", func(t *testing.T) {
		// given
		t.Setenv("GITMOD_CACHE_HOME", "")
		t.Setenv("GITMOD_MODULES_LOCAL", "")
		t.Setenv("GITMOD_SEARCH_API_HOST", "")
		t.Setenv("GITMOD_PROTOCOL", "")
		t.Setenv("GITMOD_HOST", "")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(settings.CacheHome) || settings.CacheHome != "")
		assert.Contains(t, settings.CacheHome, ".modules")
		assert.Equal(t, "modules", settings.ModulesLocal)
		assert.Equal(t, "api.github.com", settings.SearchAPIHost)
		assert.Equal(t, "git", settings.Protocol)
		assert.Equal(t, "github.com", settings.Host)
		assert.False(t, settings.Verbose)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "gitmod.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"cache_home: /from/file\nprotocol: https\n"), 0o644))
		t.Setenv("GITMOD_CACHE_HOME", "/from/env")
		t.Setenv("GITMOD_VERBOSE", "true")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/from/env", settings.CacheHome)
		assert.Equal(t, "https", settings.Protocol, "file value survives when no env override")
		assert.True(t, settings.Verbose)
	})

	t.Run("should expand environment references inside the file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "gitmod.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"cache_home: ${GITMOD_TEST_ROOT}/cache\n"), 0o644))
		t.Setenv("GITMOD_TEST_ROOT", "/srv/modules")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/modules/cache", settings.CacheHome)
	})

	t.Run("should ignore an invalid verbose value", func(t *testing.T) {
		// given
		t.Setenv("GITMOD_VERBOSE", "sometimes")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.False(t, settings.Verbose)
	})

	t.Run("should fail on an unreadable config file", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestSettingsNetworkTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 300*time.Second, (&entities.Settings{}).NetworkTimeout())
	assert.Equal(t, 10*time.Second, (&entities.Settings{NetworkTimeoutSeconds: 10}).NetworkTimeout())
	assert.Zero(t, (&entities.Settings{NetworkTimeoutSeconds: -1}).NetworkTimeout())
}

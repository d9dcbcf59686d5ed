package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// distributionModule is the tool's own distribution repository, kept in the
// same cache as every other module.
var distributionModule = entities.ModuleID{Owner: "gitmod-io", Name: "gitmod"}

// SelfUpdate is the interface for the self-update command.
type SelfUpdate interface {
	Execute(ctx context.Context, settings *entities.Settings, currentVersion string) error
}

// SelfUpdateCommand refreshes the tool's distribution repository (clone or
// pull into the cache) and reports whether a newer tagged version exists.
type SelfUpdateCommand struct {
	store *CacheStore
	cache repositories.CacheRepository
}

// NewSelfUpdateCommand creates a new SelfUpdateCommand.
func NewSelfUpdateCommand(
	store *CacheStore,
	cache repositories.CacheRepository,
) *SelfUpdateCommand {
	return &SelfUpdateCommand{store: store, cache: cache}
}

// Execute fetches the latest distribution state and compares its highest
// version tag against currentVersion.
func (it *SelfUpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	currentVersion string,
) error {
	entry, err := it.store.Ensure(ctx, settings, distributionModule)
	if err != nil {
		return fmt.Errorf("failed to fetch distribution repository: %w", err)
	}
	if entry.Stale {
		logger.Warn("Could not reach the distribution repository, version check may be outdated")
	}

	latest, tagErr := it.cache.LatestTag(entry.Path)
	if tagErr != nil {
		return fmt.Errorf("failed to read distribution tags: %w", tagErr)
	}
	if latest == "" {
		logger.Infof("Distribution repository updated at %s (no version tags)", entry.Path)
		return nil
	}

	current := currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}

	if semver.IsValid(current) && semver.Compare(latest, current) <= 0 {
		logger.Infof("Already up to date (%s)", current)
		return nil
	}

	logger.Infof("Version %s is available (running %s); updated copy is at %s",
		latest, currentVersion, entry.Path)
	return nil
}

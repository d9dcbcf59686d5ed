package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// Scan is the interface for the cache scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, refresh bool) (entities.ScanReport, error)
}

// CacheScanner walks the cache root and reports every repository leaf,
// optionally refreshing each one by pull. Directories without a repository
// marker are namespace nodes and are recursed into.
type CacheScanner struct {
	cache repositories.CacheRepository
}

// NewCacheScanner creates a new CacheScanner.
func NewCacheScanner(cache repositories.CacheRepository) *CacheScanner {
	return &CacheScanner{cache: cache}
}

// Execute scans the cache root. A missing root is an empty report, not an
// error: nothing was ever cached.
func (it *CacheScanner) Execute(
	ctx context.Context,
	settings *entities.Settings,
	refresh bool,
) (entities.ScanReport, error) {
	report := entities.ScanReport{Root: settings.CacheHome}

	if _, err := os.Stat(settings.CacheHome); os.IsNotExist(err) {
		return report, nil
	}

	visited := make(map[string]struct{})
	entries, err := it.walk(ctx, settings.CacheHome, visited, refresh)
	if err != nil {
		return report, err
	}

	report.Entries = entries
	return report, nil
}

// walk recurses into dir, collecting repository leaves. The visited set holds
// resolved real paths so symlink cycles terminate: every leaf is visited
// exactly once no matter how it is reached.
func (it *CacheScanner) walk(
	ctx context.Context,
	dir string,
	visited map[string]struct{},
	refresh bool,
) ([]entities.ScanEntry, error) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if _, seen := visited[real]; seen {
		return nil, nil
	}
	visited[real] = struct{}{}

	if it.cache.IsRepository(dir) {
		entry := entities.ScanEntry{Path: dir}
		if refresh {
			if refreshErr := it.cache.Refresh(ctx, dir); refreshErr != nil {
				entry.RefreshErr = refreshErr
				logger.Warnf("Could not refresh %s: %v", dir, refreshErr)
			} else {
				entry.Refreshed = true
			}
		}
		return []entities.ScanEntry{entry}, nil
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name() < children[j].Name()
	})

	var entries []entities.ScanEntry
	for _, child := range children {
		if !child.IsDir() && child.Type()&os.ModeSymlink == 0 {
			continue
		}
		childPath := filepath.Join(dir, child.Name())
		if info, statErr := os.Stat(childPath); statErr != nil || !info.IsDir() {
			continue
		}
		childEntries, walkErr := it.walk(ctx, childPath, visited, refresh)
		if walkErr != nil {
			return nil, walkErr
		}
		entries = append(entries, childEntries...)
	}

	return entries, nil
}

package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// CacheController handles the "cache" subcommand ("cache update").
type CacheController struct {
	settings *entities.Settings
	sink     *entities.OutputSink
	scan     commands.Scan
}

// NewCacheController creates a new CacheController.
func NewCacheController(
	settings *entities.Settings,
	sink *entities.OutputSink,
	scan commands.Scan,
) *CacheController {
	return &CacheController{settings: settings, sink: sink, scan: scan}
}

// GetBind returns the Cobra command metadata for the cache controller.
func (it *CacheController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cache update",
		Short: "Refresh every repository in the machine-wide cache",
		Long: `Walk the cache root and pull every cached repository. A repository
that cannot be refreshed keeps its cached state and is reported.`,
	}
}

// Execute refreshes the whole cache.
func (it *CacheController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing cache action (expected: cache update)")
	}
	if args[0] != "update" {
		return fmt.Errorf("unknown cache action %q (expected: cache update)", args[0])
	}

	dir, err := projectDir()
	if err != nil {
		return err
	}

	redirectSink(it.sink, dir, it.settings.Verbose)
	defer it.sink.Close()

	ctx, cancel := operationContext(it.settings)
	defer cancel()

	report, scanErr := it.scan.Execute(ctx, it.settings, true)
	if scanErr != nil {
		return scanErr
	}

	printScanReport(report, true)
	return nil
}

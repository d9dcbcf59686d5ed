package controllers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// ListController handles the "ls" subcommand: project submodules by default,
// cache contents when the literal "cache" argument is given.
type ListController struct {
	settings *entities.Settings
	sink     *entities.OutputSink
	list     commands.List
	scan     commands.Scan
}

// NewListController creates a new ListController.
func NewListController(
	settings *entities.Settings,
	sink *entities.OutputSink,
	list commands.List,
	scan commands.Scan,
) *ListController {
	return &ListController{settings: settings, sink: sink, list: list, scan: scan}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ls [cache]",
		Short: "List installed modules, or the cache contents",
		Long: `List every submodule registered in the current project, with its
checked-out branch and path. With the literal argument "cache", list every
repository in the machine-wide cache instead.`,
	}
}

// Execute lists either the project's modules or the cache.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	ctx, cancel := operationContext(it.settings)
	defer cancel()

	if len(args) > 0 && args[0] == "cache" {
		report, err := it.scan.Execute(ctx, it.settings, false)
		if err != nil {
			return err
		}
		printScanReport(report, false)
		return nil
	}

	dir, err := projectDir()
	if err != nil {
		return err
	}

	redirectSink(it.sink, dir, it.settings.Verbose)
	defer it.sink.Close()

	submodules, listErr := it.list.Execute(ctx, dir)
	if listErr != nil {
		return listErr
	}

	if len(submodules) == 0 {
		fmt.Println("no modules")
		return nil
	}

	name := color.New(color.FgCyan).SprintFunc()
	branch := color.New(color.FgGreen).SprintFunc()
	for _, submodule := range submodules {
		fmt.Printf("%s @ %s  (%s)\n",
			name(submodule.Name), branch(submodule.Branch), submodule.Path)
	}
	return nil
}

// printScanReport renders a cache walk, one line per repository leaf.
func printScanReport(report entities.ScanReport, refreshed bool) {
	path := color.New(color.FgCyan).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	for _, entry := range report.Entries {
		switch {
		case entry.RefreshErr != nil:
			fmt.Printf("%s  %s\n", path(entry.Path), warn("(refresh failed, kept cached)"))
		case entry.Refreshed:
			fmt.Printf("%s  (refreshed)\n", path(entry.Path))
		default:
			fmt.Println(path(entry.Path))
		}
	}

	action := "found"
	if refreshed {
		action = "updated"
	}
	fmt.Printf("%d cached repositories %s under %s\n", report.Count(), action, report.Root)
}

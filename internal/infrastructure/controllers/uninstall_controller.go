package controllers

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// UninstallController handles the "uninstall" subcommand.
type UninstallController struct {
	settings *entities.Settings
	sink     *entities.OutputSink
	command  commands.Uninstall
}

// NewUninstallController creates a new UninstallController.
func NewUninstallController(
	settings *entities.Settings,
	sink *entities.OutputSink,
	command commands.Uninstall,
) *UninstallController {
	return &UninstallController{settings: settings, sink: sink, command: command}
}

// GetBind returns the Cobra command metadata for the uninstall controller.
func (it *UninstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "uninstall <owner/repo>",
		Aliases: []string{"u"},
		Short:   "Remove an installed module from the current project",
		Long: `Deregister a submodule and remove its tracking metadata.

The machine-wide cache entry is kept: other projects may still install from
it, and reinstalling here will not clone again.`,
	}
}

// Execute removes one module from the project.
func (it *UninstallController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing module argument (expected owner/repo)")
	}

	dir, err := projectDir()
	if err != nil {
		return err
	}

	redirectSink(it.sink, dir, it.settings.Verbose)
	defer it.sink.Close()

	ctx, cancel := operationContext(it.settings)
	defer cancel()

	return it.command.Execute(ctx, it.settings, commands.UninstallOptions{
		ProjectDir: dir,
		Module:     args[0],
	})
}

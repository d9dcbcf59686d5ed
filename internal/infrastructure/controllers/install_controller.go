package controllers

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	settings *entities.Settings
	sink     *entities.OutputSink
	command  commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(
	settings *entities.Settings,
	sink *entities.OutputSink,
	command commands.Install,
) *InstallController {
	return &InstallController{settings: settings, sink: sink, command: command}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "install <owner/repo> [branch]",
		Aliases: []string{"i"},
		Short:   "Install a module into the current project",
		Long: `Install a dependency as a read-only submodule.

The repository is cloned once into the machine-wide cache (or refreshed when
already cached) and registered as a submodule under the local modules
directory, tracking the given branch. The working tree must be clean.`,
	}
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false,
		"Echo external tool output instead of logging it to "+entities.LogFileName)
}

// Execute runs the install sequence for one module.
func (it *InstallController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing module argument (expected owner/repo)")
	}

	dir, err := projectDir()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	redirectSink(it.sink, dir, verbose || it.settings.Verbose)
	defer it.sink.Close()

	opts := commands.InstallOptions{ProjectDir: dir, Module: args[0]}
	if len(args) > 1 {
		opts.Branch = args[1]
	}

	ctx, cancel := operationContext(it.settings)
	defer cancel()

	return it.command.Execute(ctx, it.settings, opts)
}

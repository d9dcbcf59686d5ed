package controllers

import (
	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// SelfUpdateController handles the "self-update" subcommand; the root
// --update flag dispatches here as well.
type SelfUpdateController struct {
	settings *entities.Settings
	sink     *entities.OutputSink
	command  commands.SelfUpdate
	version  string
}

// NewSelfUpdateController creates a new SelfUpdateController.
func NewSelfUpdateController(
	settings *entities.Settings,
	sink *entities.OutputSink,
	command commands.SelfUpdate,
	version Version,
) *SelfUpdateController {
	return &SelfUpdateController{
		settings: settings,
		sink:     sink,
		command:  command,
		version:  string(version),
	}
}

// GetBind returns the Cobra command metadata for the self-update controller.
func (it *SelfUpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "self-update",
		Short: "Fetch the tool's distribution repository and check for a newer version",
	}
}

// Execute refreshes the distribution clone and reports the version state.
func (it *SelfUpdateController) Execute(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	redirectSink(it.sink, dir, it.settings.Verbose)
	defer it.sink.Close()

	ctx, cancel := operationContext(it.settings)
	defer cancel()

	return it.command.Execute(ctx, it.settings, it.version)
}

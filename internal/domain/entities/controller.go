package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra metadata a controller exposes so the
// entrypoint can build the command tree without knowing the controllers.
type ControllerBind struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
}

// Controller is the contract every CLI controller fulfils. A returned error
// propagates through Cobra and makes the process exit non-zero.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra metadata a controller exposes for its
// subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI controller.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

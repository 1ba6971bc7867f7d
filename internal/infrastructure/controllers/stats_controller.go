package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// StatsController handles the "stats" subcommand.
type StatsController struct {
	command commands.Stats
}

// NewStatsController creates a new StatsController.
func NewStatsController(command commands.Stats) *StatsController {
	return &StatsController{command: command}
}

// GetBind returns the Cobra command metadata for the stats controller.
func (it *StatsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "stats",
		Short: "Dump the compiler cache statistics",
		Long: `Dump the compiler cache statistics without running a build.

The cache binary is taken from the settings and resolved on the process
PATH, exactly as it would be after a build.`,
	}
}

// Execute runs the statistics dump.
func (it *StatsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, settingsErr := loadSettings(cmd)
	if settingsErr != nil {
		return settingsErr
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(context.Background(), settings, commands.StatsOptions{
		Verbose: verbose,
	})
}

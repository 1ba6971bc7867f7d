package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// DoctorController handles the "doctor" subcommand (workspace preflight).
type DoctorController struct {
	command commands.Doctor
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(command commands.Doctor) *DoctorController {
	return &DoctorController{command: command}
}

// GetBind returns the Cobra command metadata for the doctor controller.
func (it *DoctorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "doctor",
		Short: "Check that the workspace can be bootstrapped",
		Long: `Check that the workspace can be bootstrapped without changing anything.

The preflight verifies the activation script and the marker file exist,
sources the activation script, resolves a destination for every
repository, and confirms the build command and a recent enough compiler
cache are reachable on the activated PATH.`,
	}
}

// Execute runs the preflight checks.
func (it *DoctorController) Execute(cmd *cobra.Command, _ []string) error {
	settings, settingsErr := loadSettings(cmd)
	if settingsErr != nil {
		return settingsErr
	}

	rootDir, _ := cmd.Flags().GetString("root")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(context.Background(), settings, commands.DoctorOptions{
		RootDir: rootDir,
		Verbose: verbose,
	})
}

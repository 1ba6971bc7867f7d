package controllers

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// CompileController handles the "compile" subcommand (the full bootstrap).
type CompileController struct {
	command commands.Compile
}

// NewCompileController creates a new CompileController.
func NewCompileController(command commands.Compile) *CompileController {
	return &CompileController{command: command}
}

// GetBind returns the Cobra command metadata for the compile controller.
func (it *CompileController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compile",
		Short: "Prepare the workspace and build the test harness",
		Long: `Prepare a node workspace for network-control testing and build it.

The bootstrap resolves the workspace root, sources the activation script,
selects the client branch from the marker file, clones the missing source
repositories, runs the harness build command from the directory the
process was started in, and dumps the compiler cache statistics. The
first failing step aborts the run and its exit status becomes the process
exit status.`,
	}
}

// Execute runs the bootstrap with the options gathered from the CLI flags
// and the caller's environment.
func (it *CompileController) Execute(cmd *cobra.Command, _ []string) error {
	settings, settingsErr := loadSettings(cmd)
	if settingsErr != nil {
		return settingsErr
	}

	rootDir, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(context.Background(), settings, commands.CompileOptions{
		RootDir:        rootDir,
		BranchOverride: branchOverride(),
		DryRun:         dryRun,
		Verbose:        verbose,
	})
}

// branchOverride reads the caller's requested client branch. An unset
// variable defaults to the stable branch; either way the marker decision
// downstream takes precedence.
func branchOverride() string {
	if branch := os.Getenv(entities.EnvBranchOverride); branch != "" {
		return branch
	}
	return entities.StableClientBranch
}

package main

import (
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/casper-network/nctl-bootstrap/internal"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "nctl-bootstrap",
		Short: "Build bootstrapper for the nctl test harness",
		Long: `Prepare a casper-node workspace for network-control (nctl) testing.

nctl-bootstrap replaces the CI shell glue around nctl: it sources the
workspace activation script, picks the client branch from the marker
file, clones the client and the node launcher when they are missing,
runs the harness build, and dumps the compiler cache statistics.

Typical usage:
  nctl-bootstrap compile            Full bootstrap of the surrounding checkout
  nctl-bootstrap doctor             Preflight checks without touching anything
  nctl-bootstrap stats              Compiler cache statistics only`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("settings", "c", "",
		"Path to the settings file (default: auto-detect)")
	cmd.PersistentFlags().String("root", "",
		"Workspace root (default: derived from the executable location)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without cloning or building")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.App) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return controller.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func run(args []string, _ io.Reader, stdout, stderr io.Writer) int {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectApp(&entities.Streams{Out: stdout, Err: stderr})

	rootCmd := buildRootCommand()
	addSubcommands(rootCmd, appContext)

	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("Error executing 'nctl-bootstrap': %s", err)
		return entities.ExitStatus(err)
	}

	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// Stats is the interface for the stats command.
type Stats interface {
	Execute(ctx context.Context, settings *entities.Settings, opts StatsOptions) error
}

// StatsOptions holds runtime options for a stats run.
type StatsOptions struct {
	Verbose bool // enable debug logging
}

// StatsCommand dumps the compiler cache statistics without running a build.
// It uses the process environment as-is: the cache binary must already be on
// the PATH.
type StatsCommand struct {
	runner repositories.RunnerRepository
}

// NewStatsCommand creates a new StatsCommand.
func NewStatsCommand(runner repositories.RunnerRepository) *StatsCommand {
	return &StatsCommand{runner: runner}
}

// Execute runs the cache statistics dump.
func (it *StatsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts StatsOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	invocation := entities.ToolInvocation{
		Name:    "ccache",
		Command: settings.Build.Cache,
		Args:    []string{cacheStatsFlag},
	}
	if _, runErr := it.runner.Run(ctx, invocation); runErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrExternalCommand, runErr)
	}

	return nil
}

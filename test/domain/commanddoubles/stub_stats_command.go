//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// StubStatsCommand is a stub implementation of commands.Stats.
type StubStatsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.StatsOptions
}

var _ commands.Stats = (*StubStatsCommand)(nil)

func (s *StubStatsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.StatsOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

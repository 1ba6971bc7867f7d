//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// StubCompileCommand is a stub implementation of commands.Compile.
type StubCompileCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.CompileOptions
}

var _ commands.Compile = (*StubCompileCommand)(nil)

func (s *StubCompileCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CompileOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/commands"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// StubDoctorCommand is a stub implementation of commands.Doctor.
type StubDoctorCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.DoctorOptions
}

var _ commands.Doctor = (*StubDoctorCommand)(nil)

func (s *StubDoctorCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.DoctorOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// StubEnvironmentRepository implements repositories.EnvironmentRepository
// with a fixed activation result.
type StubEnvironmentRepository struct {
	// --- configuration ---
	Vars    map[string]string
	LoadErr error

	// --- recorded calls ---
	LoadCallCount int
	LastWorkspace entities.Workspace
}

var _ repositories.EnvironmentRepository = (*StubEnvironmentRepository)(nil)

func (e *StubEnvironmentRepository) Load(
	_ context.Context,
	workspace entities.Workspace,
) (*entities.Activation, error) {
	e.LoadCallCount++
	e.LastWorkspace = workspace
	if e.LoadErr != nil {
		return nil, e.LoadErr
	}
	return entities.NewActivation(e.Vars), nil
}

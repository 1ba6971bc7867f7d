//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with a
// fixed repository set. A nil Specs falls back to the default repositories,
// matching the behavior of a workspace without a manifest.
type StubManifestRepository struct {
	Specs   []entities.RepositorySpec
	LoadErr error
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (m *StubManifestRepository) Load(_ entities.Workspace) ([]entities.RepositorySpec, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Specs != nil {
		return m.Specs, nil
	}
	return entities.DefaultRepositories(), nil
}

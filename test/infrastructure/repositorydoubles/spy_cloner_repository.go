//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// SpyClonerRepository implements repositories.ClonerRepository as a configurable spy.
type SpyClonerRepository struct {
	// --- configuration ---
	CloneErr     error
	AlreadyThere map[string]bool // destinations reported as already existing

	// --- recorded calls ---
	Requests []entities.CloneRequest
}

var _ repositories.ClonerRepository = (*SpyClonerRepository)(nil)

func (c *SpyClonerRepository) EnsureCloned(
	_ context.Context,
	req entities.CloneRequest,
) (bool, error) {
	c.Requests = append(c.Requests, req)
	if c.CloneErr != nil {
		return false, c.CloneErr
	}
	if c.AlreadyThere != nil && c.AlreadyThere[req.Destination] {
		return false, nil
	}
	return true, nil
}

// DummyClonerRepository is a no-op implementation of repositories.ClonerRepository.
type DummyClonerRepository struct{}

var _ repositories.ClonerRepository = (*DummyClonerRepository)(nil)

func (d *DummyClonerRepository) EnsureCloned(
	_ context.Context,
	_ entities.CloneRequest,
) (bool, error) {
	return false, nil
}

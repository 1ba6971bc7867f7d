package repositories

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// ClonerRepository materializes remote repositories into the workspace.
type ClonerRepository interface {
	// EnsureCloned clones req.URL into req.Destination unless the destination
	// already exists as a directory, in which case it reports (false, nil)
	// without touching it. It returns true when a clone was performed.
	EnsureCloned(ctx context.Context, req entities.CloneRequest) (bool, error)
}

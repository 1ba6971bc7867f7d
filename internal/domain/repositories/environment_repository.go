package repositories

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// EnvironmentRepository produces the build environment from a workspace's
// activation script.
type EnvironmentRepository interface {
	// Load sources the workspace activation script and returns the resulting
	// environment. The process environment is left untouched.
	Load(ctx context.Context, workspace entities.Workspace) (*entities.Activation, error)
}

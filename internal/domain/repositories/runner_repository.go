package repositories

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// RunnerRepository executes external tools described by typed invocations.
type RunnerRepository interface {
	// Run executes the invocation and returns its result. A nonzero exit maps
	// to an error carrying a *entities.StatusError.
	Run(ctx context.Context, inv entities.ToolInvocation) (*entities.ToolResult, error)

	// LookPath resolves command against the PATH of the given environment.
	LookPath(command string, env []string) (string, error)
}

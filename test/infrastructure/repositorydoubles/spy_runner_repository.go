//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// SpyRunnerRepository implements repositories.RunnerRepository as a configurable spy.
type SpyRunnerRepository struct {
	// --- Run ---
	RunErrs map[string]error  // errors keyed by invocation name
	Outputs map[string]string // captured output keyed by invocation name

	// --- LookPath ---
	Paths       map[string]string // resolutions keyed by command
	LookPathErr error

	// --- recorded calls ---
	Invocations []entities.ToolInvocation
	Looked      []string
}

var _ repositories.RunnerRepository = (*SpyRunnerRepository)(nil)

func (r *SpyRunnerRepository) Run(
	_ context.Context,
	inv entities.ToolInvocation,
) (*entities.ToolResult, error) {
	r.Invocations = append(r.Invocations, inv)
	if err, ok := r.RunErrs[inv.Name]; ok && err != nil {
		return nil, err
	}
	return &entities.ToolResult{ExitCode: 0, Output: r.Outputs[inv.Name]}, nil
}

func (r *SpyRunnerRepository) LookPath(command string, _ []string) (string, error) {
	r.Looked = append(r.Looked, command)
	if r.LookPathErr != nil {
		return "", r.LookPathErr
	}
	if r.Paths != nil {
		if path, ok := r.Paths[command]; ok {
			return path, nil
		}
	}
	return "/usr/bin/" + command, nil
}

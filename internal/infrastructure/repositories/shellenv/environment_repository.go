// Package shellenv loads build environments by interpreting POSIX shell
// activation scripts in-process.
package shellenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// EnvironmentRepository implements repositories.EnvironmentRepository by
// running the activation script with an embedded shell interpreter and
// collecting the variables it exports. Nothing leaks into the process
// environment, and PATH changes made by the script survive in the result.
type EnvironmentRepository struct {
	streams *entities.Streams
}

// NewEnvironmentRepository creates a loader attached to the given streams.
func NewEnvironmentRepository(streams *entities.Streams) repositories.EnvironmentRepository {
	return &EnvironmentRepository{streams: streams}
}

// Load sources the workspace activation script. The script runs with errexit
// set, so the first failing command aborts the load.
func (it *EnvironmentRepository) Load(
	ctx context.Context,
	workspace entities.Workspace,
) (*entities.Activation, error) {
	path := workspace.ActivatePath()

	script, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open activation script: %w", err)
	}
	defer script.Close()

	file, parseErr := syntax.NewParser().Parse(script, path)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse activation script %q: %w", path, parseErr)
	}

	runner, newErr := interp.New(
		interp.Dir(workspace.RootDir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, it.streams.Out, it.streams.Err),
		interp.Params("-e"),
	)
	if newErr != nil {
		return nil, fmt.Errorf("failed to create shell interpreter: %w", newErr)
	}

	logger.Debugf("[activate] sourcing %s", path)

	if runErr := runner.Run(ctx, file); runErr != nil {
		if status, ok := interp.IsExitStatus(runErr); ok {
			return nil, &entities.StatusError{Tool: path, Status: int(status)}
		}
		return nil, fmt.Errorf("activation script %q failed: %w", path, runErr)
	}

	return entities.NewActivation(collectVars(runner)), nil
}

// collectVars overlays the process environment with every exported string
// variable the script set.
func collectVars(runner *interp.Runner) map[string]string {
	vars := make(map[string]string, len(runner.Vars))
	for _, pair := range os.Environ() {
		if key, value, ok := strings.Cut(pair, "="); ok {
			vars[key] = value
		}
	}

	for name, variable := range runner.Vars {
		if !variable.Exported || variable.Kind != expand.String {
			continue
		}
		vars[name] = variable.Str
	}

	return vars
}

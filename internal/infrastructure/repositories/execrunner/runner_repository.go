package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// RunnerRepository implements repositories.RunnerRepository with os/exec.
type RunnerRepository struct {
	streams *entities.Streams
}

// NewRunnerRepository creates a runner that streams tool output to the given
// streams unless an invocation captures it.
func NewRunnerRepository(streams *entities.Streams) repositories.RunnerRepository {
	return &RunnerRepository{streams: streams}
}

// Run executes a single tool invocation.
func (it *RunnerRepository) Run(
	ctx context.Context,
	inv entities.ToolInvocation,
) (*entities.ToolResult, error) {
	path, resolveErr := it.resolve(inv)
	if resolveErr != nil {
		return nil, fmt.Errorf("%s: %w", inv.Name, resolveErr)
	}

	command := exec.CommandContext(ctx, path, inv.Args...)
	command.Dir = inv.Dir
	command.Env = inv.Env
	if command.Env == nil {
		command.Env = os.Environ()
	}

	var output bytes.Buffer
	if inv.Capture {
		command.Stdout = &output
		command.Stderr = &output
	} else {
		command.Stdout = it.streams.Out
		command.Stderr = it.streams.Err
	}

	logger.Debugf("[%s] running %s %s", inv.Name, path, strings.Join(inv.Args, " "))

	if runErr := command.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && exitErr.ExitCode() >= 0 {
			statusErr := &entities.StatusError{Tool: inv.Command, Status: exitErr.ExitCode()}
			if inv.Capture && output.Len() > 0 {
				return nil, fmt.Errorf("%w\noutput:\n%s", statusErr, output.String())
			}
			return nil, statusErr
		}
		return nil, fmt.Errorf("failed to run %s: %w", inv.Command, runErr)
	}

	return &entities.ToolResult{ExitCode: 0, Output: output.String()}, nil
}

// LookPath resolves command against the PATH in env. An empty env falls back
// to the process environment.
func (it *RunnerRepository) LookPath(command string, env []string) (string, error) {
	if env == nil {
		env = os.Environ()
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	path, lookErr := interp.LookPathDir(cwd, expand.ListEnviron(env...), command)
	if lookErr != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", command, lookErr)
	}
	return path, nil
}

// resolve locates the invocation's program. Bare names resolve against the
// PATH of the invocation's own environment, which is what makes commands
// provided by the activation script reachable.
func (it *RunnerRepository) resolve(inv entities.ToolInvocation) (string, error) {
	if strings.ContainsRune(inv.Command, os.PathSeparator) {
		return inv.Command, nil
	}
	return it.LookPath(inv.Command, inv.Env)
}

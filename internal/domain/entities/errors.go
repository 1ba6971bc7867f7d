package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying the stages of the bootstrap sequence. Each
// stage wraps its failures with the matching sentinel so callers can
// classify them with errors.Is.
var (
	// ErrPathResolution reports that the workspace root could not be resolved.
	ErrPathResolution = errors.New("workspace root resolution failed")

	// ErrEnvironmentLoad reports that the activation script failed or did not
	// produce the variables the bootstrap needs.
	ErrEnvironmentLoad = errors.New("environment activation failed")

	// ErrFileRead reports that the branch marker file could not be read.
	ErrFileRead = errors.New("marker file read failed")

	// ErrClone reports a failed repository clone.
	ErrClone = errors.New("repository clone failed")

	// ErrBuild reports a harness build failure.
	ErrBuild = errors.New("build command failed")

	// ErrExternalCommand reports a failure of an auxiliary external tool.
	ErrExternalCommand = errors.New("external command failed")
)

// StatusError records the exit status of an external tool or script that
// terminated with a nonzero code.
type StatusError struct {
	Tool   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Status)
}

// ExitStatus converts an error chain into a process exit code. The exit code
// of the failing tool is propagated when one is recorded anywhere in the
// chain; any other error maps to 1 and nil maps to 0.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return 1
}

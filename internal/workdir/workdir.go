// Package workdir changes the process working directory for a bounded scope
// and guarantees the previous directory can be restored.
package workdir

import (
	"fmt"
	"os"
)

// Scope is an entered working directory. Release restores the directory that
// was current when the scope was entered; it is safe to call more than once
// and from a defer.
type Scope struct {
	prev     string
	released bool
}

// Enter switches the process working directory to dir.
func Enter(dir string) (*Scope, error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to read the working directory: %w", err)
	}

	if chdirErr := os.Chdir(dir); chdirErr != nil {
		return nil, fmt.Errorf("failed to enter %q: %w", dir, chdirErr)
	}

	return &Scope{prev: prev, released: false}, nil
}

// Prev returns the directory that was current before Enter.
func (s *Scope) Prev() string {
	return s.prev
}

// Release restores the working directory recorded by Enter. Calls after the
// first successful one are no-ops.
func (s *Scope) Release() error {
	if s.released {
		return nil
	}

	if err := os.Chdir(s.prev); err != nil {
		return fmt.Errorf("failed to restore %q: %w", s.prev, err)
	}

	s.released = true
	return nil
}

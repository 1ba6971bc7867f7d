package entities

import (
	"fmt"
	"sort"
)

// Activation is the environment produced by sourcing the activation script:
// the process environment overlaid with every variable the script exported.
// It is carried explicitly instead of being written back into the process
// environment.
type Activation struct {
	vars map[string]string
}

// NewActivation builds an Activation from a flat variable map.
func NewActivation(vars map[string]string) *Activation {
	if vars == nil {
		vars = make(map[string]string)
	}
	return &Activation{vars: vars}
}

// Lookup returns the value of key and whether it is set.
func (a *Activation) Lookup(key string) (string, bool) {
	value, ok := a.vars[key]
	return value, ok
}

// Environ returns the activation as a sorted KEY=value slice, ready for
// exec.Cmd.Env.
func (a *Activation) Environ() []string {
	environ := make([]string, 0, len(a.vars))
	for key, value := range a.vars {
		environ = append(environ, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(environ)
	return environ
}

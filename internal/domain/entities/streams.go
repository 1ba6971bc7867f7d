package entities

import "io"

// Streams bundles the writers tool and script output is attached to. The CLI
// entry point provides its own stdout/stderr so tests can capture both.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

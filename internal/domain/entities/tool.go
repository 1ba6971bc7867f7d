package entities

// ToolInvocation describes a single external tool run with all of its inputs
// made explicit, so no invocation depends on ambient process state.
type ToolInvocation struct {
	Name    string   // short label for logs and errors (e.g. "build")
	Command string   // program name, resolved against Env's PATH
	Args    []string // arguments, exactly as passed to the program
	Dir     string   // working directory; empty inherits the process directory
	Env     []string // full environment; empty inherits the process environment
	Capture bool     // capture combined output instead of streaming it
}

// ToolResult reports a finished invocation.
type ToolResult struct {
	ExitCode int
	Output   string // combined output when the invocation captured it
}

package commands

// Exported for testing.
//
//nolint:gochecknoglobals // test export
var (
	ParseToolVersion   = parseToolVersion
	ResolveDestination = resolveDestination
)

package entities

// Environment variables consumed by the bootstrap.
const (
	// EnvClientHome names the variable the activation script sets to the
	// client checkout destination.
	EnvClientHome = "NCTL_CASPER_CLIENT_HOME"

	// EnvLauncherHome names the variable holding the node launcher checkout
	// destination.
	EnvLauncherHome = "NCTL_CASPER_NODE_LAUNCHER_HOME"

	// EnvBranchOverride names the variable callers use to request a client
	// branch. The value is read and then discarded by SelectClientBranch.
	EnvBranchOverride = "GH_BRANCH"
)

// Default clone sources, used when the workspace has no manifest.
const (
	DefaultClientURL   = "https://github.com/casper-ecosystem/casper-client-rs.git"
	DefaultLauncherURL = "https://github.com/casper-network/casper-node-launcher.git"
)

// RepositorySpec describes one repository the bootstrap materializes into
// the workspace before building.
type RepositorySpec struct {
	Name         string // manifest label, used in logs
	URL          string // clone URL
	Home         string // literal destination path (alternative to HomeEnv)
	HomeEnv      string // environment variable holding the destination path
	Branch       string // fixed branch; empty clones the remote default
	FollowMarker bool   // take the branch from the marker decision instead
}

// CloneRequest is a single resolved clone operation.
type CloneRequest struct {
	URL         string
	Destination string
	Branch      string // empty clones the remote default branch
}

// DefaultRepositories returns the repository set of a stock harness
// checkout: the client on the marker-selected branch and the node launcher
// on its default branch, cloned in that order.
func DefaultRepositories() []RepositorySpec {
	return []RepositorySpec{
		{
			Name:         "casper-client",
			URL:          DefaultClientURL,
			HomeEnv:      EnvClientHome,
			FollowMarker: true,
		},
		{
			Name:    "casper-node-launcher",
			URL:     DefaultLauncherURL,
			HomeEnv: EnvLauncherHome,
		},
	}
}

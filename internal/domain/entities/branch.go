package entities

import "bytes"

// Client branches the bootstrap switches between. The stable branch is used
// when the marker occurs in the marker file, the fast-sync branch otherwise.
const (
	StableClientBranch   = "dev"
	FastSyncClientBranch = "feat-fast-sync"
)

// SelectClientBranch decides which client branch to build from. The decision
// depends only on whether marker occurs in content: every input maps to
// exactly one of StableClientBranch or FastSyncClientBranch.
//
// The override argument is the branch the caller asked for, usually taken
// from GH_BRANCH. It is accepted for compatibility with the CI interface
// this tool replaced and never influences the outcome; the marker decision
// wins unconditionally.
func SelectClientBranch(content []byte, marker, override string) string {
	_ = override // read but never applied, the marker decision wins

	if bytes.Contains(content, []byte(marker)) {
		return StableClientBranch
	}
	return FastSyncClientBranch
}

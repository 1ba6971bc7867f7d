//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// WorkspaceBuilder helps create test workspaces with a fluent interface.
type WorkspaceBuilder struct {
	*testkit.BaseBuilder
	rootDir    string
	activate   string
	markerFile string
	marker     string
	manifest   string
}

// NewWorkspaceBuilder creates a new workspace builder with the stock layout.
func NewWorkspaceBuilder() *WorkspaceBuilder {
	return &WorkspaceBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		rootDir:     "/workspace",
		activate:    entities.DefaultActivateScript,
		markerFile:  entities.DefaultMarkerFile,
		marker:      entities.DefaultMarker,
		manifest:    entities.DefaultManifestFile,
	}
}

// WithRootDir sets the workspace root.
func (b *WorkspaceBuilder) WithRootDir(rootDir string) *WorkspaceBuilder {
	b.rootDir = rootDir
	return b
}

// WithActivate sets the activation script path.
func (b *WorkspaceBuilder) WithActivate(activate string) *WorkspaceBuilder {
	b.activate = activate
	return b
}

// WithMarkerFile sets the marker file path.
func (b *WorkspaceBuilder) WithMarkerFile(markerFile string) *WorkspaceBuilder {
	b.markerFile = markerFile
	return b
}

// WithMarker sets the branch marker string.
func (b *WorkspaceBuilder) WithMarker(marker string) *WorkspaceBuilder {
	b.marker = marker
	return b
}

// WithManifest sets the repository manifest path.
func (b *WorkspaceBuilder) WithManifest(manifest string) *WorkspaceBuilder {
	b.manifest = manifest
	return b
}

// Build creates the workspace (satisfies testkit.Builder interface).
func (b *WorkspaceBuilder) Build() interface{} {
	return b.BuildWorkspace()
}

// BuildWorkspace creates the workspace with a concrete return type.
func (b *WorkspaceBuilder) BuildWorkspace() entities.Workspace {
	return entities.Workspace{
		RootDir:    b.rootDir,
		Activate:   b.activate,
		MarkerFile: b.markerFile,
		Marker:     b.marker,
		Manifest:   b.manifest,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *WorkspaceBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.rootDir = "/workspace"
	b.activate = entities.DefaultActivateScript
	b.markerFile = entities.DefaultMarkerFile
	b.marker = entities.DefaultMarker
	b.manifest = entities.DefaultManifestFile
	return b
}

// Clone creates a deep copy of the WorkspaceBuilder.
func (b *WorkspaceBuilder) Clone() testkit.Builder {
	return &WorkspaceBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rootDir:     b.rootDir,
		activate:    b.activate,
		markerFile:  b.markerFile,
		marker:      b.marker,
		manifest:    b.manifest,
	}
}

package entities

import (
	"fmt"
	"path/filepath"
)

// Workspace is a resolved build workspace: the harness checkout the
// bootstrap operates on, with the paths of the artifacts it consumes.
type Workspace struct {
	RootDir    string
	Activate   string
	MarkerFile string
	Marker     string
	Manifest   string
}

// NewWorkspace binds the configured artifact paths to a resolved root.
func NewWorkspace(rootDir string, settings *Settings) Workspace {
	return Workspace{
		RootDir:    rootDir,
		Activate:   settings.Workspace.Activate,
		MarkerFile: settings.Workspace.MarkerFile,
		Marker:     settings.Workspace.Marker,
		Manifest:   settings.Workspace.Manifest,
	}
}

// ActivatePath returns the absolute path of the activation script.
func (w Workspace) ActivatePath() string {
	return w.resolve(w.Activate)
}

// MarkerFilePath returns the absolute path of the branch marker file.
func (w Workspace) MarkerFilePath() string {
	return w.resolve(w.MarkerFile)
}

// ManifestPath returns the absolute path of the repository manifest.
func (w Workspace) ManifestPath() string {
	return w.resolve(w.Manifest)
}

func (w Workspace) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.RootDir, path)
}

// ResolveRootDir derives the workspace root from the path of the running
// executable: the canonical parent of the directory containing it. A binary
// installed at <root>/bin/nctl-bootstrap therefore resolves <root>, no
// matter where the process was started from or through which symlink the
// binary was invoked.
func ResolveRootDir(selfPath string) (string, error) {
	abs, err := filepath.Abs(selfPath)
	if err != nil {
		return "", fmt.Errorf("%w: invalid executable path %q: %w", ErrPathResolution, selfPath, err)
	}

	canonical, evalErr := filepath.EvalSymlinks(abs)
	if evalErr != nil {
		return "", fmt.Errorf("%w: cannot canonicalize %q: %w", ErrPathResolution, abs, evalErr)
	}

	return filepath.Dir(filepath.Dir(canonical)), nil
}

package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default workspace layout and tool names. They mirror a stock casper-node
// checkout, so a zero-config run behaves like the original CI job.
const (
	DefaultActivateScript = "utils/nctl/activate"
	DefaultMarkerFile     = "utils/nctl/sh/staging/build_client.sh"
	DefaultMarker         = "casper-mainnet"
	DefaultManifestFile   = "nctl-bootstrap.hcl"
	DefaultBuildCommand   = "nctl-compile"
	DefaultCacheBinary    = "ccache"
)

// envVarPattern matches ${VAR_NAME} references in settings values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the top-level configuration for nctl-bootstrap.
type Settings struct {
	Workspace WorkspaceSettings `yaml:"workspace"`
	Build     BuildSettings     `yaml:"build"`
}

// WorkspaceSettings describes where the bootstrap finds its inputs. Paths
// are relative to the workspace root unless absolute.
type WorkspaceSettings struct {
	Activate   string `yaml:"activate"`    // activation script sourced before building
	MarkerFile string `yaml:"marker_file"` // file inspected for the branch marker
	Marker     string `yaml:"marker"`      // marker selecting the stable client branch
	Manifest   string `yaml:"manifest"`    // optional HCL repository manifest
}

// BuildSettings holds the external tools the bootstrap invokes.
type BuildSettings struct {
	Command        string `yaml:"command"`          // harness build command
	Cache          string `yaml:"cache"`            // compiler cache binary
	SkipCacheStats bool   `yaml:"skip_cache_stats"` // skip the stats dump after building
}

// DefaultSettings returns the configuration used when no settings file
// exists.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a settings file. Unset fields fall back to
// the defaults, and ${ENV_VAR} references are expanded afterwards so an
// unset variable surfaces as a validation error instead of a silent default.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, unmarshalErr)
	}

	settings.applyDefaults()
	settings.expandEnv()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid settings file %q: %w", path, validateErr)
	}

	return &settings, nil
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".nctl-bootstrap.yaml",
		".nctl-bootstrap.yml",
		"nctl-bootstrap.yaml",
		"nctl-bootstrap.yml",
	}

	for _, location := range locations {
		for _, pattern := range patterns {
			path := filepath.Join(location, pattern)
			if _, statErr := os.Stat(path); statErr == nil {
				return path, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

func (s *Settings) applyDefaults() {
	if s.Workspace.Activate == "" {
		s.Workspace.Activate = DefaultActivateScript
	}
	if s.Workspace.MarkerFile == "" {
		s.Workspace.MarkerFile = DefaultMarkerFile
	}
	if s.Workspace.Marker == "" {
		s.Workspace.Marker = DefaultMarker
	}
	if s.Workspace.Manifest == "" {
		s.Workspace.Manifest = DefaultManifestFile
	}
	if s.Build.Command == "" {
		s.Build.Command = DefaultBuildCommand
	}
	if s.Build.Cache == "" {
		s.Build.Cache = DefaultCacheBinary
	}
}

func (s *Settings) expandEnv() {
	for _, field := range []*string{
		&s.Workspace.Activate,
		&s.Workspace.MarkerFile,
		&s.Workspace.Marker,
		&s.Workspace.Manifest,
		&s.Build.Command,
		&s.Build.Cache,
	} {
		*field = expandEnvRefs(*field)
	}
}

func (s *Settings) validate() error {
	fields := map[string]string{
		"workspace.activate":    s.Workspace.Activate,
		"workspace.marker_file": s.Workspace.MarkerFile,
		"workspace.marker":      s.Workspace.Marker,
		"workspace.manifest":    s.Workspace.Manifest,
		"build.command":         s.Build.Command,
		"build.cache":           s.Build.Cache,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

// expandEnvRefs replaces ${VAR} references with their environment values.
// Unset variables expand to an empty string with a warning.
func expandEnvRefs(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		logger.Warnf("Environment variable %q referenced in settings is not set", varName)
		return ""
	})
}

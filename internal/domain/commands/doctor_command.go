package commands

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// minCacheVersion is the oldest compiler cache release the harness build is
// known to work with.
const minCacheVersion = "v3.7.0"

// versionPattern matches the first dotted version number in tool output.
var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Doctor is the interface for the doctor command (workspace preflight).
type Doctor interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DoctorOptions) error
}

// DoctorOptions holds runtime options for a preflight run.
type DoctorOptions struct {
	RootDir string // explicit workspace root; empty derives it from the executable path
	Verbose bool   // enable debug logging
}

// DoctorCommand verifies that a workspace can be bootstrapped: the expected
// files are in place, the activation script loads, every repository has a
// destination, and the external tools are present and recent enough. It
// never writes anything.
type DoctorCommand struct {
	environment repositories.EnvironmentRepository
	manifest    repositories.ManifestRepository
	runner      repositories.RunnerRepository
}

// NewDoctorCommand creates a new DoctorCommand.
func NewDoctorCommand(
	environment repositories.EnvironmentRepository,
	manifest repositories.ManifestRepository,
	runner repositories.RunnerRepository,
) *DoctorCommand {
	return &DoctorCommand{
		environment: environment,
		manifest:    manifest,
		runner:      runner,
	}
}

// Execute runs every preflight check and reports how many failed.
func (it *DoctorCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DoctorOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	rootDir, rootErr := resolveRootDir(opts.RootDir)
	if rootErr != nil {
		return rootErr
	}
	workspace := entities.NewWorkspace(rootDir, settings)
	logger.Infof("[doctor] workspace root: %s", rootDir)

	failures := 0
	failures += it.checkFile(workspace.ActivatePath(), "activation script")
	failures += it.checkFile(workspace.MarkerFilePath(), "marker file")

	activation, loadErr := it.environment.Load(ctx, workspace)
	if loadErr != nil {
		logger.Errorf("[doctor] activation failed: %v", loadErr)
		failures++
	} else {
		logger.Infof("[doctor] activation ok")
		failures += it.checkRepositories(workspace, activation)
		failures += it.checkTool(settings.Build.Command, activation.Environ())
		failures += it.checkCacheVersion(ctx, settings.Build.Cache, activation.Environ())
	}

	if failures > 0 {
		return fmt.Errorf("%d preflight check(s) failed", failures)
	}

	logger.Infof("[doctor] workspace is ready")
	return nil
}

func (it *DoctorCommand) checkFile(path, label string) int {
	if _, statErr := os.Stat(path); statErr != nil {
		logger.Errorf("[doctor] %s missing: %s", label, path)
		return 1
	}

	logger.Infof("[doctor] %s ok: %s", label, path)
	return 0
}

func (it *DoctorCommand) checkRepositories(
	workspace entities.Workspace,
	activation *entities.Activation,
) int {
	repos, manifestErr := it.manifest.Load(workspace)
	if manifestErr != nil {
		logger.Errorf("[doctor] manifest: %v", manifestErr)
		return 1
	}

	failures := 0
	for _, repo := range repos {
		destination, destErr := resolveDestination(repo, activation)
		if destErr != nil {
			logger.Errorf("[doctor] %s has no destination: %v", repo.Name, destErr)
			failures++
			continue
		}
		logger.Infof("[doctor] %s -> %s", repo.Name, destination)
	}

	return failures
}

func (it *DoctorCommand) checkTool(command string, env []string) int {
	path, lookErr := it.runner.LookPath(command, env)
	if lookErr != nil {
		logger.Errorf("[doctor] %s not found on the activated PATH", command)
		return 1
	}

	logger.Infof("[doctor] %s ok: %s", command, path)
	return 0
}

func (it *DoctorCommand) checkCacheVersion(ctx context.Context, cache string, env []string) int {
	if it.checkTool(cache, env) != 0 {
		return 1
	}

	invocation := entities.ToolInvocation{
		Name:    "ccache",
		Command: cache,
		Args:    []string{"--version"},
		Env:     env,
		Capture: true,
	}
	result, runErr := it.runner.Run(ctx, invocation)
	if runErr != nil {
		logger.Errorf("[doctor] %s --version failed: %v", cache, runErr)
		return 1
	}

	version := parseToolVersion(result.Output)
	if version == "" {
		logger.Warnf("[doctor] cannot parse the %s version from %q", cache, firstLine(result.Output))
		return 0
	}

	if semver.Compare(version, minCacheVersion) < 0 {
		logger.Errorf("[doctor] %s %s is older than the minimum %s", cache, version, minCacheVersion)
		return 1
	}

	logger.Infof("[doctor] %s version ok: %s", cache, version)
	return 0
}

// parseToolVersion extracts the first version number in output and
// normalizes it for semver comparison. It returns an empty string when no
// version number is present.
func parseToolVersion(output string) string {
	match := versionPattern.FindString(output)
	if match == "" {
		return ""
	}
	return "v" + match
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
	"github.com/casper-network/nctl-bootstrap/internal/workdir"
)

const cacheStatsFlag = "-s"

// Compile is the interface for the compile command (the full bootstrap).
type Compile interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CompileOptions) error
}

// CompileOptions holds runtime options for a single bootstrap run.
type CompileOptions struct {
	RootDir        string // explicit workspace root; empty derives it from the executable path
	BranchOverride string // caller-requested client branch (read, then discarded)
	DryRun         bool   // log the clone and build steps without executing them
	Verbose        bool   // enable debug logging
}

// CompileCommand runs the bootstrap sequence: resolve the workspace, load
// the build environment, materialize the source repositories, build the
// harness, and dump the compiler cache statistics. The first failing step
// aborts the whole sequence.
type CompileCommand struct {
	environment repositories.EnvironmentRepository
	manifest    repositories.ManifestRepository
	cloner      repositories.ClonerRepository
	runner      repositories.RunnerRepository
}

// NewCompileCommand creates a new CompileCommand.
func NewCompileCommand(
	environment repositories.EnvironmentRepository,
	manifest repositories.ManifestRepository,
	cloner repositories.ClonerRepository,
	runner repositories.RunnerRepository,
) *CompileCommand {
	return &CompileCommand{
		environment: environment,
		manifest:    manifest,
		cloner:      cloner,
		runner:      runner,
	}
}

// Execute runs the full bootstrap sequence. The working directory is moved
// to the workspace root for the preparation steps and restored before the
// build runs, so the build sees the directory the process was started from.
func (it *CompileCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CompileOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	rootDir, rootErr := resolveRootDir(opts.RootDir)
	if rootErr != nil {
		return rootErr
	}
	workspace := entities.NewWorkspace(rootDir, settings)
	logger.Infof("[compile] workspace root: %s", rootDir)

	scope, enterErr := workdir.Enter(rootDir)
	if enterErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrPathResolution, enterErr)
	}
	defer func() {
		if releaseErr := scope.Release(); releaseErr != nil {
			logger.Warnf("[compile] %v", releaseErr)
		}
	}()

	activation, loadErr := it.environment.Load(ctx, workspace)
	if loadErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrEnvironmentLoad, loadErr)
	}

	repos, manifestErr := it.manifest.Load(workspace)
	if manifestErr != nil {
		return fmt.Errorf("failed to load the repository manifest: %w", manifestErr)
	}

	clientBranch, branchErr := it.selectClientBranch(workspace, opts.BranchOverride)
	if branchErr != nil {
		return branchErr
	}

	if cloneErr := it.cloneRepositories(ctx, repos, activation, clientBranch, opts.DryRun); cloneErr != nil {
		return cloneErr
	}

	if releaseErr := scope.Release(); releaseErr != nil {
		return fmt.Errorf("failed to restore the working directory: %w", releaseErr)
	}

	if buildErr := it.runBuild(ctx, settings, activation, scope.Prev(), opts.DryRun); buildErr != nil {
		return buildErr
	}

	if statsErr := it.reportCacheStats(ctx, settings, activation, scope.Prev(), opts.DryRun); statsErr != nil {
		return statsErr
	}

	logger.Infof("[compile] bootstrap complete")
	return nil
}

// selectClientBranch reads the marker file and derives the client branch.
// The marker file is inspected on every run, even when the caller requested
// a branch explicitly.
func (it *CompileCommand) selectClientBranch(
	workspace entities.Workspace,
	override string,
) (string, error) {
	markerPath := workspace.MarkerFilePath()

	content, readErr := os.ReadFile(markerPath)
	if readErr != nil {
		return "", fmt.Errorf("%w: %q: %w", entities.ErrFileRead, markerPath, readErr)
	}

	branch := entities.SelectClientBranch(content, workspace.Marker, override)
	if override != "" && override != branch {
		logger.Debugf("[compile] requested branch %q superseded by the marker decision", override)
	}
	logger.Infof("[compile] client branch: %s", branch)

	return branch, nil
}

func (it *CompileCommand) cloneRepositories(
	ctx context.Context,
	repos []entities.RepositorySpec,
	activation *entities.Activation,
	clientBranch string,
	dryRun bool,
) error {
	for _, repo := range repos {
		destination, destErr := resolveDestination(repo, activation)
		if destErr != nil {
			return destErr
		}

		branch := repo.Branch
		if repo.FollowMarker {
			branch = clientBranch
		}

		reference := branch
		if reference == "" {
			reference = "the remote default branch"
		}

		if dryRun {
			logger.Infof("[clone] [DRY RUN] Would clone %s into %s (%s)", repo.URL, destination, reference)
			continue
		}

		cloned, cloneErr := it.cloner.EnsureCloned(ctx, entities.CloneRequest{
			URL:         repo.URL,
			Destination: destination,
			Branch:      branch,
		})
		if cloneErr != nil {
			return fmt.Errorf("%w: %s: %w", entities.ErrClone, repo.Name, cloneErr)
		}

		if cloned {
			logger.Infof("[clone] %s cloned into %s (%s)", repo.Name, destination, reference)
		} else {
			logger.Infof("[clone] %s already present at %s", repo.Name, destination)
		}
	}

	return nil
}

// runBuild invokes the harness build command in the directory the bootstrap
// was started from, with the activation environment.
func (it *CompileCommand) runBuild(
	ctx context.Context,
	settings *entities.Settings,
	activation *entities.Activation,
	dir string,
	dryRun bool,
) error {
	if dryRun {
		logger.Infof("[build] [DRY RUN] Would run %s", settings.Build.Command)
		return nil
	}

	logger.Infof("[build] running %s", settings.Build.Command)

	invocation := entities.ToolInvocation{
		Name:    "build",
		Command: settings.Build.Command,
		Dir:     dir,
		Env:     activation.Environ(),
	}
	if _, runErr := it.runner.Run(ctx, invocation); runErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrBuild, runErr)
	}

	return nil
}

// reportCacheStats dumps the compiler cache statistics after a build.
func (it *CompileCommand) reportCacheStats(
	ctx context.Context,
	settings *entities.Settings,
	activation *entities.Activation,
	dir string,
	dryRun bool,
) error {
	if settings.Build.SkipCacheStats {
		logger.Debugf("[ccache] statistics dump disabled")
		return nil
	}

	if dryRun {
		logger.Infof("[ccache] [DRY RUN] Would run %s %s", settings.Build.Cache, cacheStatsFlag)
		return nil
	}

	invocation := entities.ToolInvocation{
		Name:    "ccache",
		Command: settings.Build.Cache,
		Args:    []string{cacheStatsFlag},
		Dir:     dir,
		Env:     activation.Environ(),
	}
	if _, runErr := it.runner.Run(ctx, invocation); runErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrExternalCommand, runErr)
	}

	return nil
}

// resolveRootDir picks the workspace root: an explicit override when given,
// otherwise the canonical grandparent of the running executable.
func resolveRootDir(override string) (string, error) {
	if override != "" {
		abs, absErr := filepath.Abs(override)
		if absErr != nil {
			return "", fmt.Errorf("%w: invalid root %q: %w", entities.ErrPathResolution, override, absErr)
		}
		return abs, nil
	}

	self, selfErr := os.Executable()
	if selfErr != nil {
		return "", fmt.Errorf("%w: cannot locate the executable: %w", entities.ErrPathResolution, selfErr)
	}

	return entities.ResolveRootDir(self)
}

// resolveDestination picks the clone destination for a repository: its
// literal home when set, otherwise the variable named by HomeEnv in the
// activation environment.
func resolveDestination(repo entities.RepositorySpec, activation *entities.Activation) (string, error) {
	if repo.Home != "" {
		return repo.Home, nil
	}

	destination, ok := activation.Lookup(repo.HomeEnv)
	if !ok || destination == "" {
		return "", fmt.Errorf(
			"%w: %s is not set by the activation script (needed for %s)",
			entities.ErrEnvironmentLoad, repo.HomeEnv, repo.Name,
		)
	}

	return destination, nil
}

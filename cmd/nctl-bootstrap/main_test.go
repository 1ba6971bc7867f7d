package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"4d63.com/testcli"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// harness is a synthetic casper-node checkout: activation script, branch
// marker, local clone origins, and stub build tools, all under one root.
type harness struct {
	root           string
	workdir        string
	clientHome     string
	launcherHome   string
	activatePath   string
	markerPath     string
	buildWitness   string // the build script writes its working directory here
	statsWitness   string // the cache script touches this on a stats dump
	harnessBin     string
	clientOrigin   string
	launcherOrigin string
}

// setupHarness builds a workspace whose marker file has the given content and
// moves into a separate working directory, the way operators run the tool.
func setupHarness(t *testing.T, markerContent string) *harness {
	t.Helper()

	t.Setenv("HOME", testcli.MkdirTemp(t))
	t.Setenv(entities.EnvBranchOverride, "")

	h := &harness{}
	h.root = testcli.MkdirTemp(t)
	h.clientHome = filepath.Join(h.root, "external", "casper-client")
	h.launcherHome = filepath.Join(h.root, "external", "casper-node-launcher")
	h.harnessBin = filepath.Join(h.root, "harness-bin")
	h.buildWitness = filepath.Join(h.root, "build-witness.txt")
	h.statsWitness = filepath.Join(h.root, "stats-witness.txt")

	h.activatePath = filepath.Join(h.root, entities.DefaultActivateScript)
	writeFile(t, h.activatePath, 0o600, strings.Join([]string{
		`export NCTL="$PWD/utils/nctl"`,
		`export NCTL_CASPER_CLIENT_HOME="$PWD/external/casper-client"`,
		`export NCTL_CASPER_NODE_LAUNCHER_HOME="$PWD/external/casper-node-launcher"`,
		`export PATH="$PWD/harness-bin:$PATH"`,
		"",
	}, "\n"))

	h.markerPath = filepath.Join(h.root, entities.DefaultMarkerFile)
	writeFile(t, h.markerPath, 0o600, markerContent)

	h.setBuildScript(t, "pwd > \""+h.buildWitness+"\"\necho harness build complete\n")
	writeFile(t, filepath.Join(h.harnessBin, "ccache"), 0o700, strings.Join([]string{
		"#!/bin/sh",
		`if [ "$1" = "--version" ]; then`,
		`  echo "ccache version 4.8.3"`,
		`  exit 0`,
		`fi`,
		`[ "$1" = "-s" ] || exit 9`,
		`echo "cache hit rate 100%"`,
		`echo ran > "` + h.statsWitness + `"`,
		"",
	}, "\n"))

	h.clientOrigin = initOrigin(t, "dev", "feat-fast-sync")
	h.launcherOrigin = initOrigin(t)
	writeFile(t, filepath.Join(h.root, entities.DefaultManifestFile), 0o600, fmt.Sprintf(`
repository "casper-client" {
  url           = %q
  home_env      = "NCTL_CASPER_CLIENT_HOME"
  follow_marker = true
}

repository "casper-node-launcher" {
  url      = %q
  home_env = "NCTL_CASPER_NODE_LAUNCHER_HOME"
}
`, h.clientOrigin, h.launcherOrigin))

	h.workdir = testcli.MkdirTemp(t)
	testcli.Chdir(t, h.workdir)

	return h
}

func (h *harness) setBuildScript(t *testing.T, body string) {
	t.Helper()
	writeFile(t, filepath.Join(h.harnessBin, "nctl-compile"), 0o700, "#!/bin/sh\n"+body)
}

func (h *harness) compileArgs(extra ...string) []string {
	return append([]string{"nctl-bootstrap", "compile", "--root", h.root}, extra...)
}

func writeFile(t *testing.T, path string, mode os.FileMode, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

// initOrigin creates a local clone origin with a "master" default branch plus
// one distinguishable commit per extra branch.
func initOrigin(t *testing.T, branches ...string) string {
	t.Helper()

	dir := testcli.MkdirTemp(t)
	repo, initErr := git.PlainInit(dir, false)
	require.NoError(t, initErr)
	worktree, wtErr := repo.Worktree()
	require.NoError(t, wtErr)

	writeCommit := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o600))
		_, addErr := worktree.Add(name)
		require.NoError(t, addErr)
		//nolint:exhaustruct // Minimal CommitOptions initialization with required fields only
		_, commitErr := worktree.Commit("add "+name, &git.CommitOptions{
			Author: &object.Signature{Name: "ci", Email: "ci@example.com", When: time.Now()},
		})
		require.NoError(t, commitErr)
	}

	writeCommit("README.md")
	for _, branch := range branches {
		//nolint:exhaustruct // Minimal CheckoutOptions initialization with required fields only
		require.NoError(t, worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(branch),
			Create: true,
		}))
		writeCommit(branch + ".txt")
		//nolint:exhaustruct // Minimal CheckoutOptions initialization with required fields only
		require.NoError(t, worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName("master"),
		}))
	}

	return dir
}

func headBranch(t *testing.T, dir string) string {
	t.Helper()

	repo, openErr := git.PlainOpen(dir)
	require.NoError(t, openErr)
	head, headErr := repo.Head()
	require.NoError(t, headErr)

	return head.Name().Short()
}

func TestCompileWithMainnetMarker(t *testing.T) {
	h := setupHarness(t, "#!/bin/sh\nstage_assets casper-mainnet\n")

	exitCode, stdout, stderr := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "client branch: dev")
	assert.Contains(t, stdout, "harness build complete")
	assert.Contains(t, stdout, "cache hit rate 100%")
	assert.Equal(t, "dev", headBranch(t, h.clientHome))
	assert.Equal(t, "master", headBranch(t, h.launcherHome))
}

func TestCompileWithoutMainnetMarker(t *testing.T) {
	h := setupHarness(t, "#!/bin/sh\nstage_assets testnet\n")

	exitCode, _, stderr := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "client branch: feat-fast-sync")
	assert.Equal(t, "feat-fast-sync", headBranch(t, h.clientHome))
}

func TestCompileDiscardsRequestedBranch(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	t.Setenv(entities.EnvBranchOverride, "release-1.4.5")

	exitCode, _, stderr := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "client branch: dev")
	assert.Equal(t, "dev", headBranch(t, h.clientHome))
}

func TestCompileRunsBuildFromInvocationDirectory(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")

	exitCode, _, _ := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 0, exitCode)
	witness, readErr := os.ReadFile(h.buildWitness)
	require.NoError(t, readErr)
	expected, evalErr := filepath.EvalSymlinks(h.workdir)
	require.NoError(t, evalErr)
	assert.Equal(t, expected, strings.TrimSpace(string(witness)))
}

func TestCompilePropagatesBuildExitCode(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	h.setBuildScript(t, "exit 7\n")

	exitCode, _, stderr := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 7, exitCode)
	assert.Contains(t, stderr, "Error executing 'nctl-bootstrap'")
	assert.NoFileExists(t, h.statsWitness, "the stats dump must not run after a failed build")
}

func TestCompileSkipsExistingCheckouts(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	precious := filepath.Join(h.clientHome, "local-changes.txt")
	writeFile(t, precious, 0o600, "precious\n")

	exitCode, _, _ := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 0, exitCode)
	assert.FileExists(t, precious)
	assert.NoDirExists(t, filepath.Join(h.clientHome, ".git"))
	assert.Equal(t, "master", headBranch(t, h.launcherHome))
}

func TestCompileFailsWithoutActivationScript(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	require.NoError(t, os.Remove(h.activatePath))

	exitCode, _, stderr := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "failed to open activation script")
	assert.NoDirExists(t, h.clientHome)
	assert.NoFileExists(t, h.buildWitness)
}

func TestCompileFailsWithoutMarkerFile(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	require.NoError(t, os.Remove(h.markerPath))

	exitCode, _, _ := testcli.Main(t, h.compileArgs(), nil, run)

	assert.Equal(t, 1, exitCode)
	assert.NoDirExists(t, h.clientHome)
}

func TestCompileDryRun(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")

	exitCode, _, stderr := testcli.Main(t, h.compileArgs("--dry-run"), nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "DRY RUN")
	assert.NoDirExists(t, h.clientHome)
	assert.NoDirExists(t, h.launcherHome)
	assert.NoFileExists(t, h.buildWitness)
	assert.NoFileExists(t, h.statsWitness)
}

func TestDoctorOnHealthyWorkspace(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")

	exitCode, _, stderr := testcli.Main(t,
		[]string{"nctl-bootstrap", "doctor", "--root", h.root}, nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "workspace is ready")
}

func TestDoctorOnBrokenWorkspace(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	require.NoError(t, os.Remove(h.markerPath))

	exitCode, _, stderr := testcli.Main(t,
		[]string{"nctl-bootstrap", "doctor", "--root", h.root}, nil, run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "preflight check(s) failed")
}

func TestStats(t *testing.T) {
	h := setupHarness(t, "stage_assets casper-mainnet\n")
	t.Setenv("PATH", h.harnessBin+string(os.PathListSeparator)+os.Getenv("PATH"))

	exitCode, stdout, _ := testcli.Main(t, []string{"nctl-bootstrap", "stats"}, nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "cache hit rate 100%")
	assert.FileExists(t, h.statsWitness)
}

func TestHelpWithoutArguments(t *testing.T) {
	t.Setenv("HOME", testcli.MkdirTemp(t))
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, stdout, _ := testcli.Main(t, []string{"nctl-bootstrap"}, nil, run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "compile")
	assert.Contains(t, stdout, "doctor")
	assert.Contains(t, stdout, "stats")
}

func TestUnknownCommand(t *testing.T) {
	t.Setenv("HOME", testcli.MkdirTemp(t))
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, _, stderr := testcli.Main(t, []string{"nctl-bootstrap", "launch"}, nil, run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "Error executing 'nctl-bootstrap'")
}

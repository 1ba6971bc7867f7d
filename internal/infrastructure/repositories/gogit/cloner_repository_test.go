package gogit_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/infrastructure/repositories/gogit"
)

func discardStreams() *entities.Streams {
	return &entities.Streams{Out: io.Discard, Err: io.Discard}
}

// initSourceRepo creates a local origin with a "master" default branch and a
// "dev" branch that is one commit ahead, so clones can be told apart.
func initSourceRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, initErr := git.PlainInit(dir, false)
	require.NoError(t, initErr)

	worktree, wtErr := repo.Worktree()
	require.NoError(t, wtErr)

	writeCommit := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
		_, addErr := worktree.Add(name)
		require.NoError(t, addErr)
		//nolint:exhaustruct // Minimal CommitOptions initialization with required fields only
		_, commitErr := worktree.Commit("add "+name, &git.CommitOptions{
			Author: &object.Signature{Name: "ci", Email: "ci@example.com", When: time.Now()},
		})
		require.NoError(t, commitErr)
	}

	writeCommit("README.md", "casper client\n")

	//nolint:exhaustruct // Minimal CheckoutOptions initialization with required fields only
	require.NoError(t, worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("dev"),
		Create: true,
	}))
	writeCommit("dev.txt", "dev branch\n")

	//nolint:exhaustruct // Minimal CheckoutOptions initialization with required fields only
	require.NoError(t, worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("master"),
	}))

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

func TestClonerRepositoryEnsureCloned(t *testing.T) {
	t.Parallel()

	t.Run("should clone the requested branch", func(t *testing.T) {
		t.Parallel()

		// given
		origin := initSourceRepo(t)
		destination := filepath.Join(t.TempDir(), "casper-client")
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		cloned, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         origin,
			Destination: destination,
			Branch:      "dev",
		})

		// then
		require.NoError(t, err)
		assert.True(t, cloned)
		assert.Equal(t, "dev", headBranch(t, destination))
		assert.FileExists(t, filepath.Join(destination, "dev.txt"))
	})

	t.Run("should clone the remote default branch when no branch is set", func(t *testing.T) {
		t.Parallel()

		// given
		origin := initSourceRepo(t)
		destination := filepath.Join(t.TempDir(), "casper-node-launcher")
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		cloned, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         origin,
			Destination: destination,
			Branch:      "",
		})

		// then
		require.NoError(t, err)
		assert.True(t, cloned)
		assert.Equal(t, "master", headBranch(t, destination))
		assert.NoFileExists(t, filepath.Join(destination, "dev.txt"))
	})

	t.Run("should skip an existing destination without touching it", func(t *testing.T) {
		t.Parallel()

		// given
		origin := initSourceRepo(t)
		destination := filepath.Join(t.TempDir(), "casper-client")
		require.NoError(t, os.MkdirAll(destination, 0o750))
		marker := filepath.Join(destination, "local-changes.txt")
		require.NoError(t, os.WriteFile(marker, []byte("precious\n"), 0o600))
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		cloned, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         origin,
			Destination: destination,
			Branch:      "dev",
		})

		// then
		require.NoError(t, err)
		assert.False(t, cloned)
		content, readErr := os.ReadFile(marker)
		require.NoError(t, readErr)
		assert.Equal(t, "precious\n", string(content))
	})

	t.Run("should fail for an unknown branch", func(t *testing.T) {
		t.Parallel()

		// given
		origin := initSourceRepo(t)
		destination := filepath.Join(t.TempDir(), "casper-client")
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		_, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         origin,
			Destination: destination,
			Branch:      "feat-does-not-exist",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clone")
	})

	t.Run("should fail when the source repository is missing", func(t *testing.T) {
		t.Parallel()

		// given
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		_, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         filepath.Join(t.TempDir(), "does-not-exist"),
			Destination: filepath.Join(t.TempDir(), "checkout"),
			Branch:      "",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clone")
	})

	t.Run("should fail when the destination is a file", func(t *testing.T) {
		t.Parallel()

		// given
		origin := initSourceRepo(t)
		destination := filepath.Join(t.TempDir(), "not-a-directory")
		require.NoError(t, os.WriteFile(destination, []byte("in the way\n"), 0o600))
		cloner := gogit.NewClonerRepository(discardStreams())

		// when
		_, err := cloner.EnsureCloned(context.Background(), entities.CloneRequest{
			URL:         origin,
			Destination: destination,
			Branch:      "",
		})

		// then
		require.Error(t, err)
	})
}

package gogit

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

// ClonerRepository implements repositories.ClonerRepository with go-git.
type ClonerRepository struct {
	streams *entities.Streams
}

// NewClonerRepository creates a cloner that writes clone progress to the
// error stream.
func NewClonerRepository(streams *entities.Streams) repositories.ClonerRepository {
	return &ClonerRepository{streams: streams}
}

// EnsureCloned clones req.URL into req.Destination unless the destination
// directory already exists. Existing directories are trusted as-is; their
// contents are not inspected.
func (it *ClonerRepository) EnsureCloned(
	ctx context.Context,
	req entities.CloneRequest,
) (bool, error) {
	if info, statErr := os.Stat(req.Destination); statErr == nil && info.IsDir() {
		logger.Debugf("[clone] %s already present, skipping", req.Destination)
		return false, nil
	}

	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	options := &git.CloneOptions{
		URL:      req.URL,
		Progress: it.streams.Err,
	}
	if req.Branch != "" {
		options.ReferenceName = plumbing.NewBranchReferenceName(req.Branch)
	}

	if _, cloneErr := git.PlainCloneContext(ctx, req.Destination, false, options); cloneErr != nil {
		return false, fmt.Errorf("failed to clone %q into %q: %w", req.URL, req.Destination, cloneErr)
	}

	return true, nil
}

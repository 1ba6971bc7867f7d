package repositories

import (
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// ManifestRepository resolves the set of repositories a workspace needs.
type ManifestRepository interface {
	// Load reads the workspace manifest. A missing manifest yields the
	// default repository set and no error.
	Load(workspace entities.Workspace) ([]entities.RepositorySpec, error)
}

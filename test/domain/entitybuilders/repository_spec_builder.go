//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositorySpecBuilder helps create test repository specs with a fluent interface.
type RepositorySpecBuilder struct {
	*testkit.BaseBuilder
	name         string
	url          string
	home         string
	homeEnv      string
	branch       string
	followMarker bool
}

// NewRepositorySpecBuilder creates a new repository spec builder with sensible defaults.
func NewRepositorySpecBuilder() *RepositorySpecBuilder {
	return &RepositorySpecBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		name:         "test-repo",
		url:          "https://example.com/test-repo.git",
		home:         "",
		homeEnv:      "TEST_REPO_HOME",
		branch:       "",
		followMarker: false,
	}
}

// WithName sets the repository name.
func (b *RepositorySpecBuilder) WithName(name string) *RepositorySpecBuilder {
	b.name = name
	return b
}

// WithURL sets the clone URL.
func (b *RepositorySpecBuilder) WithURL(url string) *RepositorySpecBuilder {
	b.url = url
	return b
}

// WithHome sets the literal destination path and clears the destination
// variable, keeping the spec valid.
func (b *RepositorySpecBuilder) WithHome(home string) *RepositorySpecBuilder {
	b.home = home
	b.homeEnv = ""
	return b
}

// WithHomeEnv sets the destination environment variable and clears the
// literal destination, keeping the spec valid.
func (b *RepositorySpecBuilder) WithHomeEnv(homeEnv string) *RepositorySpecBuilder {
	b.homeEnv = homeEnv
	b.home = ""
	return b
}

// WithBranch sets a fixed branch.
func (b *RepositorySpecBuilder) WithBranch(branch string) *RepositorySpecBuilder {
	b.branch = branch
	return b
}

// WithFollowMarker makes the spec track the marker-selected branch.
func (b *RepositorySpecBuilder) WithFollowMarker() *RepositorySpecBuilder {
	b.followMarker = true
	return b
}

// Build creates the repository spec (satisfies testkit.Builder interface).
func (b *RepositorySpecBuilder) Build() interface{} {
	return b.BuildRepositorySpec()
}

// BuildRepositorySpec creates the repository spec with a concrete return type.
func (b *RepositorySpecBuilder) BuildRepositorySpec() entities.RepositorySpec {
	return entities.RepositorySpec{
		Name:         b.name,
		URL:          b.url,
		Home:         b.home,
		HomeEnv:      b.homeEnv,
		Branch:       b.branch,
		FollowMarker: b.followMarker,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositorySpecBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-repo"
	b.url = "https://example.com/test-repo.git"
	b.home = ""
	b.homeEnv = "TEST_REPO_HOME"
	b.branch = ""
	b.followMarker = false
	return b
}

// Clone creates a deep copy of the RepositorySpecBuilder.
func (b *RepositorySpecBuilder) Clone() testkit.Builder {
	return &RepositorySpecBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		url:          b.url,
		home:         b.home,
		homeEnv:      b.homeEnv,
		branch:       b.branch,
		followMarker: b.followMarker,
	}
}

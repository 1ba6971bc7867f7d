package hclmanifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
	"github.com/casper-network/nctl-bootstrap/internal/domain/repositories"
)

const repositoryBlockType = "repository"

// ManifestRepository implements repositories.ManifestRepository for HCL
// manifests of the form:
//
//	repository "casper-client" {
//	  url           = "https://github.com/casper-ecosystem/casper-client-rs.git"
//	  home_env      = "NCTL_CASPER_CLIENT_HOME"
//	  follow_marker = true
//	}
type ManifestRepository struct{}

// NewManifestRepository creates a manifest loader.
func NewManifestRepository() repositories.ManifestRepository {
	return &ManifestRepository{}
}

// Load reads the workspace manifest. A workspace without a manifest file
// uses the default repository set.
func (it *ManifestRepository) Load(workspace entities.Workspace) ([]entities.RepositorySpec, error) {
	path := workspace.ManifestPath()

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if errors.Is(readErr, os.ErrNotExist) {
			logger.Debugf("[manifest] no manifest at %s, using the default repositories", path)
			return entities.DefaultRepositories(), nil
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, readErr)
	}

	return parseManifest(data, path)
}

func parseManifest(data []byte, filename string) ([]entities.RepositorySpec, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest: %w", diags)
	}

	//nolint:exhaustruct // only the block schema matters here
	content, _, contentDiags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: repositoryBlockType, LabelNames: []string{"name"}},
		},
	})
	if contentDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest: %w", contentDiags)
	}

	specs := make([]entities.RepositorySpec, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		spec, blockErr := parseRepositoryBlock(block)
		if blockErr != nil {
			return nil, blockErr
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("manifest %q declares no repositories", filename)
	}

	return specs, nil
}

//nolint:cyclop // one case per manifest attribute
func parseRepositoryBlock(block *hcl.Block) (entities.RepositorySpec, error) {
	name := ""
	if len(block.Labels) > 0 {
		name = block.Labels[0]
	}

	spec := entities.RepositorySpec{Name: name}

	attributes, _ := block.Body.JustAttributes()
	for attrName, attribute := range attributes {
		value, valueDiags := attribute.Expr.Value(&hcl.EvalContext{}) //nolint:exhaustruct // literal values only
		if valueDiags.HasErrors() {
			return spec, fmt.Errorf("repository %q: invalid %s: %w", name, attrName, valueDiags)
		}

		switch attrName {
		case "url":
			if value.Type() != cty.String {
				return spec, attributeTypeError(name, attrName, "string")
			}
			spec.URL = value.AsString()
		case "home":
			if value.Type() != cty.String {
				return spec, attributeTypeError(name, attrName, "string")
			}
			spec.Home = value.AsString()
		case "home_env":
			if value.Type() != cty.String {
				return spec, attributeTypeError(name, attrName, "string")
			}
			spec.HomeEnv = value.AsString()
		case "branch":
			if value.Type() != cty.String {
				return spec, attributeTypeError(name, attrName, "string")
			}
			spec.Branch = value.AsString()
		case "follow_marker":
			if value.Type() != cty.Bool {
				return spec, attributeTypeError(name, attrName, "bool")
			}
			spec.FollowMarker = value.True()
		default:
			return spec, fmt.Errorf("repository %q: unsupported attribute %q", name, attrName)
		}
	}

	return spec, validateSpec(spec)
}

func validateSpec(spec entities.RepositorySpec) error {
	if spec.URL == "" {
		return fmt.Errorf("repository %q: url is required", spec.Name)
	}
	if spec.Home == "" && spec.HomeEnv == "" {
		return fmt.Errorf("repository %q: one of home or home_env is required", spec.Name)
	}
	if spec.Home != "" && spec.HomeEnv != "" {
		return fmt.Errorf("repository %q: home and home_env are mutually exclusive", spec.Name)
	}
	if spec.Branch != "" && spec.FollowMarker {
		return fmt.Errorf("repository %q: branch and follow_marker are mutually exclusive", spec.Name)
	}
	return nil
}

func attributeTypeError(repo, attribute, want string) error {
	return fmt.Errorf("repository %q: %s must be a %s", repo, attribute, want)
}

package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	manifestPathRequiredMessageConstant           = "run manifest path must be provided"
	manifestLoadErrorTemplateConstant             = "failed to load run manifest: %w"
	manifestParseErrorTemplateConstant            = "failed to parse run manifest: %w"
	manifestEmptyRepositoriesMessageConstant      = "run manifest must list at least one repository"
	manifestRepositoryNameRequiredMessageConstant = "run manifest repository names must be non-empty"
)

// Manifest describes the recorded outcome of one batch run.
type Manifest struct {
	Repositories []RepositoryOutcome `yaml:"repositories"`
}

// RepositoryOutcome captures the recorded result for one repository,
// including an optional repository-level error and per-branch outcomes.
type RepositoryOutcome struct {
	Name     string          `yaml:"name"`
	Error    string          `yaml:"error"`
	Branches []BranchOutcome `yaml:"branches"`
}

// BranchOutcome captures the recorded result for one branch.
type BranchOutcome struct {
	Name  string `yaml:"name"`
	Error string `yaml:"error"`
}

// LoadManifest reads a run manifest from disk and performs basic validation.
func LoadManifest(filePath string) (Manifest, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Manifest{}, errors.New(manifestPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Manifest{}, fmt.Errorf(manifestLoadErrorTemplateConstant, readError)
	}

	var manifest Manifest
	if unmarshalError := yaml.Unmarshal(contentBytes, &manifest); unmarshalError != nil {
		return Manifest{}, fmt.Errorf(manifestParseErrorTemplateConstant, unmarshalError)
	}

	if len(manifest.Repositories) == 0 {
		return Manifest{}, errors.New(manifestEmptyRepositoriesMessageConstant)
	}

	for repositoryIndex := range manifest.Repositories {
		trimmedName := strings.TrimSpace(manifest.Repositories[repositoryIndex].Name)
		if len(trimmedName) == 0 {
			return Manifest{}, errors.New(manifestRepositoryNameRequiredMessageConstant)
		}
		manifest.Repositories[repositoryIndex].Name = trimmedName
	}

	return manifest, nil
}

package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/makspress/pressline/internal/model"
)

// CatalogYAMLRepository loads stage catalogs from YAML files.
type CatalogYAMLRepository struct {
	fs fs.FS
}

// NewCatalogYAMLRepository creates a new YAML catalog repository.
func NewCatalogYAMLRepository(filesystem fs.FS) *CatalogYAMLRepository {
	return &CatalogYAMLRepository{fs: filesystem}
}

// GetCatalog loads a stage catalog from a YAML file and returns a validated
// domain model.
func (r *CatalogYAMLRepository) GetCatalog(ctx context.Context, path string) (*model.StageCatalog, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	catalog, err := cfg.toModel()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return catalog, nil
}

// CatalogConfig represents the YAML structure for a stage catalog.
//
//	stages:
//	  - name: Manuscript
//	    substeps: [Received, Proofread]
//	  - name: Dispatch
type CatalogConfig struct {
	Stages []StageConfig `yaml:"stages"`
}

// StageConfig represents the YAML structure for a single stage.
type StageConfig struct {
	Name     string   `yaml:"name"`
	SubSteps []string `yaml:"substeps"`
}

func (c CatalogConfig) toModel() (*model.StageCatalog, error) {
	stages := make([]model.Stage, len(c.Stages))
	for i, st := range c.Stages {
		stages[i] = model.Stage{Name: st.Name, SubSteps: st.SubSteps}
	}
	// Structural validation (non-empty, no duplicates) lives in the model
	// constructor.
	return model.NewStageCatalog(stages)
}

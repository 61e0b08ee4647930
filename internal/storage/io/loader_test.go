package io_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storageio "github.com/makspress/pressline/internal/storage/io"
)

func TestGetCatalog(t *testing.T) {
	tests := map[string]struct {
		yaml      string
		expErr    bool
		expStages []string
	}{
		"valid catalog with sub-steps": {
			yaml: `
stages:
  - name: Manuscript
    substeps: [Received, Proofread]
  - name: Dispatch
`,
			expStages: []string{"Manuscript", "Dispatch"},
		},
		"catalog without stages should fail": {
			yaml:   `stages: []`,
			expErr: true,
		},
		"duplicated stage names should fail": {
			yaml: `
stages:
  - name: Printing
  - name: Printing
`,
			expErr: true,
		},
		"empty sub-step label should fail": {
			yaml: `
stages:
  - name: Printing
    substeps: ["Setup", ""]
`,
			expErr: true,
		},
		"malformed yaml should fail": {
			yaml:   `stages: [`,
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			fs := fstest.MapFS{
				"stages.yaml": &fstest.MapFile{Data: []byte(test.yaml)},
			}
			repo := storageio.NewCatalogYAMLRepository(fs)

			catalog, err := repo.GetCatalog(context.Background(), "stages.yaml")

			if test.expErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expStages, catalog.StageNames())
		})
	}
}

func TestGetCatalogMissingFile(t *testing.T) {
	repo := storageio.NewCatalogYAMLRepository(fstest.MapFS{})

	_, err := repo.GetCatalog(context.Background(), "missing.yaml")
	require.Error(t, err)
}

func TestGetCatalogSubSteps(t *testing.T) {
	fs := fstest.MapFS{
		"stages.yaml": &fstest.MapFile{Data: []byte(`
stages:
  - name: Printing
    substeps: [Setup, "Press Run"]
  - name: Dispatch
`)},
	}
	repo := storageio.NewCatalogYAMLRepository(fs)

	catalog, err := repo.GetCatalog(context.Background(), "stages.yaml")
	require.NoError(t, err)

	subSteps, err := catalog.SubSteps(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Setup", "Press Run"}, subSteps)

	subSteps, err = catalog.SubSteps(1)
	require.NoError(t, err)
	assert.Empty(t, subSteps)
}

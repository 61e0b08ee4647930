package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/model"
)

func TestNewStageCatalog(t *testing.T) {
	tests := map[string]struct {
		stages []model.Stage
		expErr bool
	}{
		"A valid catalog should not fail": {
			stages: []model.Stage{
				{Name: "Design", SubSteps: []string{"Draft", "Review"}},
				{Name: "Ship"},
			},
		},

		"An empty catalog should fail": {
			stages: []model.Stage{},
			expErr: true,
		},

		"A stage without a name should fail": {
			stages: []model.Stage{{Name: ""}},
			expErr: true,
		},

		"Duplicated stage names should fail": {
			stages: []model.Stage{{Name: "Print"}, {Name: "Print"}},
			expErr: true,
		},

		"An empty sub-step label should fail": {
			stages: []model.Stage{{Name: "Print", SubSteps: []string{"Setup", ""}}},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			catalog, err := model.NewStageCatalog(test.stages)

			if test.expErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrNotValid))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(test.stages), catalog.StageCount())
		})
	}
}

func TestStageCatalogAccessors(t *testing.T) {
	catalog := model.DefaultStageCatalog()

	assert.Equal(t, 5, catalog.StageCount())
	assert.Equal(t, 4, catalog.LastStage())
	assert.Equal(t, []string{"Manuscript", "Prepress", "Printing", "Binding", "Dispatch"}, catalog.StageNames())

	name, err := catalog.StageName(1)
	require.NoError(t, err)
	assert.Equal(t, "Prepress", name)

	_, err = catalog.StageName(5)
	assert.True(t, errors.Is(err, model.ErrOutOfRange))

	subSteps, err := catalog.SubSteps(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Setup", "Press Run"}, subSteps)

	// The terminal stage has no sub-steps.
	subSteps, err = catalog.SubSteps(4)
	require.NoError(t, err)
	assert.Empty(t, subSteps)

	_, err = catalog.SubSteps(-1)
	assert.True(t, errors.Is(err, model.ErrOutOfRange))

	index, err := catalog.StageIndex("Binding")
	require.NoError(t, err)
	assert.Equal(t, 3, index)

	_, err = catalog.StageIndex("Warehouse")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	subSteps, err = catalog.SubStepsByName("Manuscript")
	require.NoError(t, err)
	assert.Equal(t, []string{"Received", "Proofread"}, subSteps)
}

func TestStageCatalogImmutability(t *testing.T) {
	stages := []model.Stage{{Name: "Print", SubSteps: []string{"Setup", "Run"}}}
	catalog, err := model.NewStageCatalog(stages)
	require.NoError(t, err)

	// Mutating the input or a returned copy must not leak into the catalog.
	stages[0].SubSteps[0] = "Mutated"
	got, err := catalog.SubSteps(0)
	require.NoError(t, err)
	got[1] = "Mutated too"

	fresh, err := catalog.SubSteps(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Setup", "Run"}, fresh)
}

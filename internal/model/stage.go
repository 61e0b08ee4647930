package model

import "fmt"

// Stage is a single production pipeline phase with its ordered sub-steps.
// A stage may have zero sub-steps.
type Stage struct {
	Name     string
	SubSteps []string
}

// StageCatalog is the ordered set of production stages a print job moves
// through. It is immutable after construction; the index of a stage in the
// catalog is its canonical identifier.
type StageCatalog struct {
	stages []Stage
}

// NewStageCatalog creates a validated stage catalog.
func NewStageCatalog(stages []Stage) (*StageCatalog, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("catalog needs at least one stage: %w", ErrNotValid)
	}

	seen := map[string]struct{}{}
	for _, st := range stages {
		if st.Name == "" {
			return nil, fmt.Errorf("stage name is required: %w", ErrNotValid)
		}
		if _, ok := seen[st.Name]; ok {
			return nil, fmt.Errorf("duplicated stage %q: %w", st.Name, ErrNotValid)
		}
		seen[st.Name] = struct{}{}

		for _, sub := range st.SubSteps {
			if sub == "" {
				return nil, fmt.Errorf("stage %q has an empty sub-step label: %w", st.Name, ErrNotValid)
			}
		}
	}

	// Copy so callers can't mutate the catalog afterwards.
	copied := make([]Stage, len(stages))
	for i, st := range stages {
		copied[i] = Stage{Name: st.Name, SubSteps: append([]string{}, st.SubSteps...)}
	}

	return &StageCatalog{stages: copied}, nil
}

// DefaultStageCatalog returns the built-in print production pipeline.
func DefaultStageCatalog() *StageCatalog {
	c, err := NewStageCatalog([]Stage{
		{Name: "Manuscript", SubSteps: []string{"Received", "Proofread"}},
		{Name: "Prepress", SubSteps: []string{"Imposition", "Plate Making"}},
		{Name: "Printing", SubSteps: []string{"Setup", "Press Run"}},
		{Name: "Binding", SubSteps: []string{"Folding", "Trimming"}},
		{Name: "Dispatch"},
	})
	if err != nil {
		// The built-in catalog is static data, it can't be invalid.
		panic(fmt.Sprintf("invalid built-in stage catalog: %s", err))
	}
	return c
}

// StageCount returns the number of stages in the catalog.
func (c *StageCatalog) StageCount() int { return len(c.stages) }

// StageName returns the name of the stage at the given index.
func (c *StageCatalog) StageName(index int) (string, error) {
	if index < 0 || index >= len(c.stages) {
		return "", fmt.Errorf("stage index %d: %w", index, ErrOutOfRange)
	}
	return c.stages[index].Name, nil
}

// SubSteps returns a copy of the ordered sub-step labels of the stage at the
// given index.
func (c *StageCatalog) SubSteps(index int) ([]string, error) {
	if index < 0 || index >= len(c.stages) {
		return nil, fmt.Errorf("stage index %d: %w", index, ErrOutOfRange)
	}
	return append([]string{}, c.stages[index].SubSteps...), nil
}

// SubStepsByName returns the sub-step labels of the named stage.
func (c *StageCatalog) SubStepsByName(name string) ([]string, error) {
	index, err := c.StageIndex(name)
	if err != nil {
		return nil, err
	}
	return c.SubSteps(index)
}

// StageIndex resolves a stage name to its canonical index.
func (c *StageCatalog) StageIndex(name string) (int, error) {
	for i, st := range c.stages {
		if st.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("stage %q: %w", name, ErrNotFound)
}

// StageNames returns the ordered stage names.
func (c *StageCatalog) StageNames() []string {
	names := make([]string, len(c.stages))
	for i, st := range c.stages {
		names[i] = st.Name
	}
	return names
}

// LastStage returns the index of the terminal stage.
func (c *StageCatalog) LastStage() int { return len(c.stages) - 1 }

// Package workflow implements the job progression state machine over an
// immutable stage catalog: defensive normalization, the single advance
// transition and the step classification used by the dashboard.
package workflow

import (
	"fmt"

	"github.com/makspress/pressline/internal/model"
)

// EventKind identifies what an advance transition did.
type EventKind string

const (
	// EventSubStepAdvanced means the job moved to the next sub-step of its
	// current stage.
	EventSubStepAdvanced EventKind = "substep-advanced"
	// EventStageAdvanced means the job moved to the next stage.
	EventStageAdvanced EventKind = "stage-advanced"
	// EventMilestoneReached means the job is fully processed, advancing is a
	// no-op from here on.
	EventMilestoneReached EventKind = "milestone-reached"
)

// Event is the outcome of an advance transition.
type Event struct {
	Kind EventKind
	// StageName is the stage the job is at after the transition.
	StageName string
	// SubStepLabel is the sub-step the job is at after the transition, empty
	// when the stage has no sub-steps.
	SubStepLabel string
}

// EngineConfig is the configuration for the workflow engine.
type EngineConfig struct {
	Catalog *model.StageCatalog
}

func (c *EngineConfig) defaults() error {
	if c.Catalog == nil {
		return fmt.Errorf("stage catalog is required")
	}
	return nil
}

// Engine computes job stage transitions against a fixed stage catalog. All
// methods are pure with respect to their inputs.
type Engine struct {
	catalog *model.StageCatalog
}

// NewEngine creates a new workflow engine.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{catalog: cfg.Catalog}, nil
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *model.StageCatalog { return e.catalog }

// Normalize clamps the job's stage and sub-step into the catalog bounds.
// Out-of-range state (e.g. restored from storage) must never break a render,
// so every classification and transition normalizes first.
func (e *Engine) Normalize(job model.PrintJob) model.PrintJob {
	if job.Stage < 0 {
		job.Stage = 0
	}
	if job.Stage >= e.catalog.StageCount() {
		job.Stage = e.catalog.LastStage()
	}

	subSteps, _ := e.catalog.SubSteps(job.Stage)
	switch {
	case len(subSteps) == 0:
		job.SubStep = 0
	case job.SubStep < 0:
		job.SubStep = 0
	case job.SubStep >= len(subSteps):
		job.SubStep = len(subSteps) - 1
	}

	return job
}

// Advance moves a job to its next sub-step, next stage or terminal
// milestone, and returns the new state with the emitted event. Advancing a
// completed job is a no-op that re-emits the milestone event.
func (e *Engine) Advance(job model.PrintJob) (model.PrintJob, Event) {
	job = e.Normalize(job)

	subSteps, _ := e.catalog.SubSteps(job.Stage)

	// Next sub-step within the current stage. A stage without sub-steps has
	// a single implicit resting sub-step, so it falls through to the stage
	// transition directly.
	if len(subSteps) > 0 && job.SubStep < len(subSteps)-1 {
		job.SubStep++
		stageName, _ := e.catalog.StageName(job.Stage)
		return job, Event{
			Kind:         EventSubStepAdvanced,
			StageName:    stageName,
			SubStepLabel: subSteps[job.SubStep],
		}
	}

	// Next stage.
	if job.Stage < e.catalog.LastStage() {
		job.Stage++
		job.SubStep = 0
		stageName, _ := e.catalog.StageName(job.Stage)
		nextSubSteps, _ := e.catalog.SubSteps(job.Stage)
		ev := Event{Kind: EventStageAdvanced, StageName: stageName}
		if len(nextSubSteps) > 0 {
			ev.SubStepLabel = nextSubSteps[0]
		}
		return job, ev
	}

	// Terminal milestone.
	stageName, _ := e.catalog.StageName(job.Stage)
	ev := Event{Kind: EventMilestoneReached, StageName: stageName}
	if len(subSteps) > 0 {
		ev.SubStepLabel = subSteps[job.SubStep]
	}
	return job, ev
}

// Completed reports whether the job is at the terminal milestone.
func (e *Engine) Completed(job model.PrintJob) bool {
	job = e.Normalize(job)
	if job.Stage != e.catalog.LastStage() {
		return false
	}
	subSteps, _ := e.catalog.SubSteps(job.Stage)
	return len(subSteps) == 0 || job.SubStep == len(subSteps)-1
}

// StageStates classifies every catalog stage relative to the job's progress.
func (e *Engine) StageStates(job model.PrintJob) []model.StepState {
	job = e.Normalize(job)

	states := make([]model.StepState, e.catalog.StageCount())
	for i := range states {
		switch {
		case i < job.Stage:
			states[i] = model.StepCompleted
		case i == job.Stage:
			states[i] = model.StepActive
		default:
			states[i] = model.StepPending
		}
	}
	return states
}

// SubStepStates classifies the sub-steps of the job's current stage relative
// to its progress. Stages without sub-steps return an empty slice.
func (e *Engine) SubStepStates(job model.PrintJob) []model.StepState {
	job = e.Normalize(job)

	subSteps, _ := e.catalog.SubSteps(job.Stage)
	states := make([]model.StepState, len(subSteps))
	for i := range states {
		switch {
		case i < job.SubStep:
			states[i] = model.StepCompleted
		case i == job.SubStep:
			states[i] = model.StepActive
		default:
			states[i] = model.StepPending
		}
	}
	return states
}

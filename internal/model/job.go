package model

import (
	"fmt"
	"strings"
	"time"
)

// JobType classifies the kind of publication a job produces.
type JobType string

const (
	// JobTypeAcademic is for academic and educational publications.
	JobTypeAcademic JobType = "Academic"
	// JobTypeTrade is for trade publications.
	JobTypeTrade JobType = "Trade"
	// JobTypePromotional is for promotional material.
	JobTypePromotional JobType = "Promotional"
	// JobTypeOther is the fallback for anything unlisted.
	JobTypeOther JobType = "Other"
)

// ParseJobType maps free-form input to the closed job type set, falling back
// to JobTypeOther.
func ParseJobType(s string) JobType {
	s = strings.TrimSpace(s)
	for _, t := range []JobType{JobTypeAcademic, JobTypeTrade, JobTypePromotional} {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return JobTypeOther
}

// BadgeCategory returns the display category of the type. It is a total
// mapping, unknown types land on the default badge.
func (t JobType) BadgeCategory() string {
	switch t {
	case JobTypeAcademic:
		return "academic"
	case JobTypeTrade:
		return "trade"
	case JobTypePromotional:
		return "promo"
	default:
		return "default"
	}
}

// Priority represents the urgency of a job.
type Priority string

const (
	// PriorityUrgent marks jobs that jump the visual queue.
	PriorityUrgent Priority = "Urgent"
	// PriorityNormal is the default priority.
	PriorityNormal Priority = "Normal"
)

// ParsePriority maps free-form input to a priority, defaulting to normal.
func ParsePriority(s string) Priority {
	if strings.EqualFold(strings.TrimSpace(s), string(PriorityUrgent)) {
		return PriorityUrgent
	}
	return PriorityNormal
}

// PrintJob represents a production job moving through the stage catalog.
type PrintJob struct {
	ID       string
	Client   string
	Title    string
	Type     JobType
	Quantity int
	Priority Priority

	// Stage indexes into the catalog stages, SubStep into the sub-steps of
	// that stage (0 when the stage has none).
	Stage   int
	SubStep int

	CreatedAt time.Time
}

// JobConfig is the input for creating a new print job.
type JobConfig struct {
	Client   string
	Title    string
	Type     JobType
	Quantity int
	Priority Priority
}

// Validate validates the job creation input.
func (c *JobConfig) Validate() error {
	if c.Client == "" {
		return fmt.Errorf("client is required: %w", ErrNotValid)
	}
	if c.Title == "" {
		return fmt.Errorf("title is required: %w", ErrNotValid)
	}

	if c.Type == "" {
		c.Type = JobTypeOther
	}
	if c.Priority == "" {
		c.Priority = PriorityNormal
	}
	// Quantity is loosely validated, a non-positive value falls back to 1.
	if c.Quantity <= 0 {
		c.Quantity = 1
	}

	return nil
}

// SortOrder selects how job views are ordered.
type SortOrder string

const (
	// SortNewest orders by descending creation time (the default).
	SortNewest SortOrder = "Newest"
	// SortOldest orders by ascending creation time.
	SortOldest SortOrder = "Oldest"
)

// FilterAll is the sentinel that disables a type or stage filter.
const FilterAll = "All"

// JobFilter selects and orders the visible subset of the job store.
type JobFilter struct {
	// Search matches case-insensitively against id, client and title.
	Search string
	// Type is FilterAll or an exact job type.
	Type string
	// StageName is FilterAll or an exact stage name. Names that don't
	// resolve against the catalog disable stage filtering.
	StageName string
	// Sort defaults to SortNewest.
	Sort SortOrder
}

// PositionedJob pairs a job with its position in the storage order, so
// consumers of filtered views can address the store without re-searching.
type PositionedJob struct {
	Position int
	Job      PrintJob
}

// StepState classifies a stage or sub-step relative to a job's progress.
type StepState string

const (
	// StepCompleted means the job already passed this step.
	StepCompleted StepState = "completed"
	// StepActive means the job is currently at this step.
	StepActive StepState = "active"
	// StepPending means the job has not reached this step yet.
	StepPending StepState = "pending"
)

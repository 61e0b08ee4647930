package lib

import (
	"errors"
	"time"

	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/workflow"
)

// Sentinel errors returned by the SDK. Match with [errors.Is].
var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource with the same ID or email
	// already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned for invalid input or operations.
	ErrNotValid = errors.New("not valid")
)

// JobType classifies a print job.
type JobType string

const (
	JobTypeAcademic    JobType = "Academic"
	JobTypeTrade       JobType = "Trade"
	JobTypePromotional JobType = "Promotional"
	JobTypeOther       JobType = "Other"
)

// Priority is the job priority.
type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityUrgent Priority = "Urgent"
)

// SortOrder selects the view ordering by creation time.
type SortOrder string

const (
	// SortNewest lists the most recently created jobs first (default).
	SortNewest SortOrder = "Newest"
	// SortOldest lists the oldest jobs first.
	SortOldest SortOrder = "Oldest"
)

// Job represents a print job returned by the SDK.
//
// This is a read-only snapshot of the job state at the time of the API call.
type Job struct {
	// ID is the unique identifier assigned at creation.
	ID string
	// Client is the customer name.
	Client string
	// Title is the work title.
	Title string
	// Type classifies the job.
	Type JobType
	// Quantity is the number of copies.
	Quantity int
	// Priority is the job priority.
	Priority Priority
	// Stage is the current workflow stage index.
	Stage int
	// SubStep is the current sub-step index within the stage.
	SubStep int
	// CreatedAt is when the job was created.
	CreatedAt time.Time
}

// CreateJobOpts configures job creation.
//
// Client and Title are required. Type defaults to [JobTypeOther], Priority to
// [PriorityNormal] and Quantity to 1.
type CreateJobOpts struct {
	Client   string
	Title    string
	Type     JobType
	Quantity int
	Priority Priority
}

// ListJobsOpts configures job listing.
//
// Pass nil to [Client.ListJobs] or [Client.Dashboard] to list everything
// newest first.
type ListJobsOpts struct {
	// Search is a case-insensitive substring match on id, client and title.
	Search string
	// Type keeps only jobs of this type. Empty means all types.
	Type JobType
	// Stage keeps only jobs currently at the stage with this name. Unknown
	// names disable stage filtering.
	Stage string
	// Sort is the view ordering. Empty means [SortNewest].
	Sort SortOrder
}

// EventKind classifies what an advance step did.
type EventKind string

const (
	// EventSubStepAdvanced means the job moved to the next sub-step within
	// its stage.
	EventSubStepAdvanced EventKind = "substep_advanced"
	// EventStageAdvanced means the job crossed into the next stage.
	EventStageAdvanced EventKind = "stage_advanced"
	// EventMilestoneReached means the job is at the terminal stage; advancing
	// it further is a no-op.
	EventMilestoneReached EventKind = "milestone_reached"
)

// AdvanceResult is the outcome of a single advance step.
type AdvanceResult struct {
	// Job is the job state after the step.
	Job Job
	// Kind says what the step did.
	Kind EventKind
	// Stage is the stage name after the step.
	Stage string
	// SubStep is the active sub-step label after the step, empty when the
	// stage has none.
	SubStep string
}

// StepState classifies a stage or sub-step relative to a job's position.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

// Counters are the headline numbers of the board, always computed over the
// whole store regardless of filters.
type Counters struct {
	TotalJobs int
	Prepress  int
	Printing  int
	Dispatch  int
}

// Row is a single dashboard row: a job annotated with its workflow position.
type Row struct {
	Job           Job
	Stage         string
	BadgeCategory string
	StageStates   []StepState
	SubStepLabels []string
	SubStepStates []StepState
	Completed     bool
}

// Dashboard is the full production board projection.
type Dashboard struct {
	Counters   Counters
	StageNames []string
	Rows       []Row
}

// Stage describes one workflow stage for [Config].Stages.
type Stage struct {
	// Name is the stage name, unique within the catalog.
	Name string
	// SubSteps are the ordered sub-step labels. May be empty.
	SubSteps []string
}

// ManuscriptRole identifies who uploaded a manuscript version.
type ManuscriptRole string

const (
	RoleAuthor ManuscriptRole = "Author"
	RoleEditor ManuscriptRole = "Editor"
)

// ManuscriptStatus is the review status of a manuscript version.
type ManuscriptStatus string

const (
	StatusDraft     ManuscriptStatus = "Draft"
	StatusProofSent ManuscriptStatus = "Proof Sent"
	StatusApproved  ManuscriptStatus = "Approved"
)

// ManuscriptFile describes an uploaded file. Only the descriptor is stored,
// never the content.
type ManuscriptFile struct {
	Name      string
	SizeBytes int64
	MediaType string
}

// PrintOptions are the production options attached to an upload. They drive
// the derived job type and quantity.
type PrintOptions struct {
	ProjectType string
	PaperSize   string
	ColorMode   string
	Finish      string
	WeightGSM   int
	Orientation string
	Quantity    int
}

// UploadOpts configures a manuscript upload.
//
// Client and File are required, and the file must be a PDF. Title defaults to
// the file name, Role to [RoleAuthor] and Status to [StatusDraft].
type UploadOpts struct {
	Client  string
	Title   string
	File    ManuscriptFile
	Options *PrintOptions
	Role    ManuscriptRole
	Status  ManuscriptStatus
	Note    string
}

// ManuscriptVersion is one entry of the version history.
type ManuscriptVersion struct {
	ID            string
	Role          ManuscriptRole
	Status        ManuscriptStatus
	Note          string
	FileName      string
	FileSizeBytes int64
	FileType      string
	CreatedAt     time.Time
}

// UploadResult is the created job together with its recorded version.
type UploadResult struct {
	Job     Job
	Version ManuscriptVersion
}

// User is a registered account.
type User struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

// --- Internal conversion helpers ---

func fromInternalJob(j model.PrintJob) Job {
	return Job{
		ID:        j.ID,
		Client:    j.Client,
		Title:     j.Title,
		Type:      JobType(j.Type),
		Quantity:  j.Quantity,
		Priority:  Priority(j.Priority),
		Stage:     j.Stage,
		SubStep:   j.SubStep,
		CreatedAt: j.CreatedAt,
	}
}

func toInternalJobConfig(opts CreateJobOpts) model.JobConfig {
	return model.JobConfig{
		Client:   opts.Client,
		Title:    opts.Title,
		Type:     model.JobType(opts.Type),
		Quantity: opts.Quantity,
		Priority: model.Priority(opts.Priority),
	}
}

func toInternalFilter(opts *ListJobsOpts) model.JobFilter {
	if opts == nil {
		return model.JobFilter{}
	}

	return model.JobFilter{
		Search:    opts.Search,
		Type:      string(opts.Type),
		StageName: opts.Stage,
		Sort:      model.SortOrder(opts.Sort),
	}
}

func fromInternalEventKind(k workflow.EventKind) EventKind {
	switch k {
	case workflow.EventStageAdvanced:
		return EventStageAdvanced
	case workflow.EventMilestoneReached:
		return EventMilestoneReached
	default:
		return EventSubStepAdvanced
	}
}

func fromInternalStepStates(states []model.StepState) []StepState {
	out := make([]StepState, len(states))
	for i, st := range states {
		out[i] = StepState(st)
	}
	return out
}

func fromInternalVersion(v model.ManuscriptVersion) ManuscriptVersion {
	return ManuscriptVersion{
		ID:            v.ID,
		Role:          ManuscriptRole(v.Role),
		Status:        ManuscriptStatus(v.Status),
		Note:          v.Note,
		FileName:      v.FileName,
		FileSizeBytes: v.FileSizeBytes,
		FileType:      v.FileType,
		CreatedAt:     v.CreatedAt,
	}
}

func fromInternalUser(u model.User) User {
	return User{
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

// mappedError keeps the internal error message while matching the public
// sentinel with errors.Is.
type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }

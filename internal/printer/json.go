package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/makspress/pressline/internal/app/dashboard"
	"github.com/makspress/pressline/internal/model"
)

// JSONPrinter prints production board information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// jobItem represents a job in the list output.
type jobItem struct {
	Position  int       `json:"position"`
	ID        string    `json:"id"`
	Client    string    `json:"client"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Quantity  int       `json:"quantity"`
	Stage     int       `json:"stage"`
	SubStep   int       `json:"sub_step"`
	CreatedAt time.Time `json:"created_at"`
}

// dashboardOutput represents the full dashboard output.
type dashboardOutput struct {
	Counters   countersOutput `json:"counters"`
	StageNames []string       `json:"stage_names"`
	Rows       []rowOutput    `json:"rows"`
}

// countersOutput represents the stage counters output.
type countersOutput struct {
	TotalJobs int `json:"total_jobs"`
	Prepress  int `json:"prepress"`
	Printing  int `json:"printing"`
	Dispatch  int `json:"dispatch"`
}

// rowOutput represents a single dashboard row output.
type rowOutput struct {
	Job           jobItem  `json:"job"`
	StageName     string   `json:"stage_name"`
	BadgeCategory string   `json:"badge_category"`
	StageStates   []string `json:"stage_states"`
	SubStepLabels []string `json:"sub_step_labels"`
	SubStepStates []string `json:"sub_step_states"`
	Completed     bool     `json:"completed"`
}

// versionItem represents a manuscript version in the list output.
type versionItem struct {
	ID            string    `json:"id"`
	FileName      string    `json:"file_name"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	FileType      string    `json:"file_type"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintJobList prints jobs in JSON format.
func (j *JSONPrinter) PrintJobList(jobs []model.PositionedJob) error {
	items := make([]jobItem, len(jobs))
	for i, pj := range jobs {
		items[i] = newJobItem(pj)
	}
	return j.encode(items)
}

// PrintDashboard prints the dashboard projection in JSON format.
func (j *JSONPrinter) PrintDashboard(d dashboard.Dashboard) error {
	output := dashboardOutput{
		Counters: countersOutput{
			TotalJobs: d.Counters.TotalJobs,
			Prepress:  d.Counters.Prepress,
			Printing:  d.Counters.Printing,
			Dispatch:  d.Counters.Dispatch,
		},
		StageNames: d.StageNames,
		Rows:       make([]rowOutput, len(d.Rows)),
	}

	for i, row := range d.Rows {
		output.Rows[i] = rowOutput{
			Job:           newJobItem(model.PositionedJob{Position: row.Position, Job: row.Job}),
			StageName:     row.StageName,
			BadgeCategory: row.BadgeCategory,
			StageStates:   stepStrings(row.StageStates),
			SubStepLabels: row.SubStepLabels,
			SubStepStates: stepStrings(row.SubStepStates),
			Completed:     row.Completed,
		}
	}

	return j.encode(output)
}

// PrintVersionList prints manuscript versions in JSON format.
func (j *JSONPrinter) PrintVersionList(versions []model.ManuscriptVersion) error {
	items := make([]versionItem, len(versions))
	for i, v := range versions {
		items[i] = versionItem{
			ID:            v.ID,
			FileName:      v.FileName,
			FileSizeBytes: v.FileSizeBytes,
			FileType:      v.FileType,
			Role:          string(v.Role),
			Status:        string(v.Status),
			Note:          v.Note,
			CreatedAt:     v.CreatedAt.UTC(),
		}
	}
	return j.encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v interface{}) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newJobItem(pj model.PositionedJob) jobItem {
	return jobItem{
		Position:  pj.Position,
		ID:        pj.Job.ID,
		Client:    pj.Job.Client,
		Title:     pj.Job.Title,
		Type:      string(pj.Job.Type),
		Priority:  string(pj.Job.Priority),
		Quantity:  pj.Job.Quantity,
		Stage:     pj.Job.Stage,
		SubStep:   pj.Job.SubStep,
		CreatedAt: pj.Job.CreatedAt.UTC(),
	}
}

func stepStrings(states []model.StepState) []string {
	out := make([]string, len(states))
	for i, st := range states {
		out[i] = string(st)
	}
	return out
}

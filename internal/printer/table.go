package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/makspress/pressline/internal/app/dashboard"
	"github.com/makspress/pressline/internal/model"
)

// Step markers used in workflow tracks.
const (
	markCompleted = "✓"
	markActive    = "●"
	markPending   = "·"
)

// TablePrinter prints production board information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintJobList prints jobs in a table format.
func (t *TablePrinter) PrintJobList(jobs []model.PositionedJob) error {
	if len(jobs) == 0 {
		fmt.Fprintln(t.writer, "No jobs match the current view.")
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "ID\tCLIENT\tTITLE\tTYPE\tPRIORITY\tQTY\tCREATED")

	// Print rows.
	for _, pj := range jobs {
		j := pj.Job
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			j.ID, j.Client, j.Title, j.Type, j.Priority, j.Quantity, TimeAgo(j.CreatedAt))
	}

	return nil
}

// PrintDashboard prints the stage counters followed by one row per job with
// its workflow track.
func (t *TablePrinter) PrintDashboard(d dashboard.Dashboard) error {
	fmt.Fprintf(t.writer, "Total jobs:  %d\n", d.Counters.TotalJobs)
	fmt.Fprintf(t.writer, "Prepress:    %d\n", d.Counters.Prepress)
	fmt.Fprintf(t.writer, "Printing:    %d\n", d.Counters.Printing)
	fmt.Fprintf(t.writer, "Dispatch:    %d\n", d.Counters.Dispatch)
	fmt.Fprintln(t.writer)

	if len(d.Rows) == 0 {
		fmt.Fprintln(t.writer, "No active jobs. Create one with 'pressline job create' or 'pressline upload'.")
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "ID\tCLIENT\tTITLE\tTYPE\tSTAGE\tTRACK\tSUB-STEP\tCREATED")

	// Print rows.
	for _, row := range d.Rows {
		j := row.Job

		stage := row.StageName
		if row.Completed {
			stage += " (done)"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Client, j.Title, j.Type, stage,
			track(row.StageStates), activeSubStep(row), TimeAgo(j.CreatedAt))
	}

	return nil
}

// PrintVersionList prints manuscript versions in a table format.
func (t *TablePrinter) PrintVersionList(versions []model.ManuscriptVersion) error {
	if len(versions) == 0 {
		fmt.Fprintln(t.writer, "No manuscript versions uploaded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "ID\tFILE\tSIZE\tROLE\tSTATUS\tNOTE\tCREATED")

	// Print rows.
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.FileName, FormatBytes(v.FileSizeBytes), v.Role, v.Status,
			v.Note, TimeAgo(v.CreatedAt))
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

// track renders stage states as a compact marker string, e.g. "[✓ ✓ ● · ·]".
func track(states []model.StepState) string {
	marks := make([]string, len(states))
	for i, st := range states {
		switch st {
		case model.StepCompleted:
			marks[i] = markCompleted
		case model.StepActive:
			marks[i] = markActive
		default:
			marks[i] = markPending
		}
	}
	return "[" + strings.Join(marks, " ") + "]"
}

// activeSubStep returns the label of the sub-step in progress, or "-" when the
// stage has none or the job is done.
func activeSubStep(row dashboard.Row) string {
	for i, st := range row.SubStepStates {
		if st == model.StepActive {
			return row.SubStepLabels[i]
		}
	}
	return "-"
}

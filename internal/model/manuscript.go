package model

import (
	"fmt"
	"strings"
	"time"
)

// ManuscriptRole identifies who uploaded a manuscript version.
type ManuscriptRole string

const (
	ManuscriptRoleAuthor ManuscriptRole = "Author"
	ManuscriptRoleEditor ManuscriptRole = "Editor"
)

// ManuscriptStatus is the review status of a manuscript version.
type ManuscriptStatus string

const (
	ManuscriptStatusDraft     ManuscriptStatus = "Draft"
	ManuscriptStatusProofSent ManuscriptStatus = "Proof Sent"
	ManuscriptStatusApproved  ManuscriptStatus = "Approved"
)

// ManuscriptFile describes an uploaded file. Only the descriptor is kept,
// file contents are never stored.
type ManuscriptFile struct {
	Name      string
	SizeBytes int64
	MediaType string
}

// IsPDF reports whether the descriptor looks like a PDF, by media type or by
// file extension.
func (f ManuscriptFile) IsPDF() bool {
	if strings.EqualFold(f.MediaType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(f.Name), ".pdf")
}

// PrintOptions are the optional print settings selected during upload.
type PrintOptions struct {
	ProjectType string
	PaperSize   string
	ColorMode   string
	Finish      string
	WeightGSM   int
	Orientation string
	Quantity    int
}

// ManuscriptVersion is one entry of the manuscript version history.
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

// Validate validates a manuscript version entry, defaulting role and status.
func (v *ManuscriptVersion) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("id is required: %w", ErrNotValid)
	}
	if v.FileName == "" {
		return fmt.Errorf("file name is required: %w", ErrNotValid)
	}
	if v.Role == "" {
		v.Role = ManuscriptRoleAuthor
	}
	if v.Status == "" {
		v.Status = ManuscriptStatusDraft
	}
	switch v.Status {
	case ManuscriptStatusDraft, ManuscriptStatusProofSent, ManuscriptStatusApproved:
	default:
		return fmt.Errorf("unknown manuscript status %q: %w", v.Status, ErrNotValid)
	}
	return nil
}

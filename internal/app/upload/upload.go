package upload

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
)

// ServiceConfig is the configuration for the manuscript upload service.
type ServiceConfig struct {
	JobCreate   *jobcreate.Service
	Manuscripts storage.ManuscriptRepository
	Logger      log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.JobCreate == nil {
		return fmt.Errorf("job create service is required")
	}
	if c.Manuscripts == nil {
		return fmt.Errorf("manuscript repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Upload"})
	return nil
}

// Service handles the manuscript upload workspace: it turns a file
// descriptor plus optional print options into a new job at the initial
// stage, and records the version history entry.
type Service struct {
	jobCreate   *jobcreate.Service
	manuscripts storage.ManuscriptRepository
	logger      log.Logger
}

// NewService creates a new upload service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		jobCreate:   cfg.JobCreate,
		manuscripts: cfg.Manuscripts,
		logger:      cfg.Logger,
	}, nil
}

// Request represents the upload request parameters.
type Request struct {
	Client  string
	Title   string
	File    model.ManuscriptFile
	Options *model.PrintOptions
	Role    model.ManuscriptRole
	Status  model.ManuscriptStatus
	Note    string
}

// Response is the created job with its recorded manuscript version.
type Response struct {
	Job     model.PrintJob
	Version model.ManuscriptVersion
}

// Run validates the uploaded file, derives the job configuration from the
// print options and creates the job plus its version history entry.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.File.Name == "" {
		return nil, fmt.Errorf("no file selected: %w", model.ErrNotValid)
	}
	if !req.File.IsPDF() {
		return nil, fmt.Errorf("file %q is not a PDF: %w", req.File.Name, model.ErrNotValid)
	}

	cfg := model.JobConfig{
		Client:   req.Client,
		Title:    req.Title,
		Type:     deriveType(req.Options),
		Quantity: deriveQuantity(req.Options),
		Priority: model.PriorityNormal,
	}
	if cfg.Title == "" {
		// Fall back to the file name when no title was given.
		cfg.Title = strings.TrimSuffix(req.File.Name, ".pdf")
	}

	job, err := s.jobCreate.Run(ctx, jobcreate.Request{Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("could not create job: %w", err)
	}

	now := time.Now().UTC()
	version := model.ManuscriptVersion{
		ID:            "MS-" + ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Role:          req.Role,
		Status:        req.Status,
		Note:          strings.TrimSpace(req.Note),
		FileName:      req.File.Name,
		FileSizeBytes: req.File.SizeBytes,
		FileType:      req.File.MediaType,
		CreatedAt:     now,
	}
	if err := s.manuscripts.InsertVersion(ctx, version); err != nil {
		return nil, fmt.Errorf("could not save manuscript version: %w", err)
	}

	s.logger.Infof("Uploaded manuscript %s as job %s", version.FileName, job.ID)

	return &Response{Job: *job, Version: version}, nil
}

// deriveType picks the job type: the explicit project type wins unless it is
// "Auto", then the print options are classified by keyword. Spot color or a
// super finish read as promotional work, A5 or monochrome as trade, anything
// else as academic.
func deriveType(opts *model.PrintOptions) model.JobType {
	if opts == nil {
		return model.JobTypeAcademic
	}

	if opts.ProjectType != "" && !strings.EqualFold(opts.ProjectType, "Auto") {
		return model.ParseJobType(opts.ProjectType)
	}

	color := strings.ToLower(opts.ColorMode)
	finish := strings.ToLower(opts.Finish)
	paper := strings.ToLower(opts.PaperSize)

	switch {
	case strings.Contains(color, "spot") || strings.Contains(finish, "super"):
		return model.JobTypePromotional
	case paper == "a5" || strings.Contains(color, "mono"):
		return model.JobTypeTrade
	default:
		return model.JobTypeAcademic
	}
}

// deriveQuantity defaults to 1 when options are absent or non-positive.
func deriveQuantity(opts *model.PrintOptions) int {
	if opts == nil || opts.Quantity <= 0 {
		return 1
	}
	return opts.Quantity
}

package lib

import (
	"context"
	"fmt"

	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/app/upload"
	"github.com/makspress/pressline/internal/app/versionapprove"
	"github.com/makspress/pressline/internal/app/versionlist"
	"github.com/makspress/pressline/internal/app/versionremove"
	"github.com/makspress/pressline/internal/model"
)

// UploadManuscript records a manuscript upload: it validates the PDF, derives
// the job configuration from the print options, creates the job at the first
// stage and appends a version history entry.
func (c *Client) UploadManuscript(ctx context.Context, opts UploadOpts) (*UploadResult, error) {
	createSvc, err := jobcreate.NewService(jobcreate.ServiceConfig{
		Repository: c.jobs,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	svc, err := upload.NewService(upload.ServiceConfig{
		JobCreate:   createSvc,
		Manuscripts: c.manuscripts,
		Logger:      c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var printOpts *model.PrintOptions
	if opts.Options != nil {
		printOpts = &model.PrintOptions{
			ProjectType: opts.Options.ProjectType,
			PaperSize:   opts.Options.PaperSize,
			ColorMode:   opts.Options.ColorMode,
			Finish:      opts.Options.Finish,
			WeightGSM:   opts.Options.WeightGSM,
			Orientation: opts.Options.Orientation,
			Quantity:    opts.Options.Quantity,
		}
	}

	resp, err := svc.Run(ctx, upload.Request{
		Client: opts.Client,
		Title:  opts.Title,
		File: model.ManuscriptFile{
			Name:      opts.File.Name,
			SizeBytes: opts.File.SizeBytes,
			MediaType: opts.File.MediaType,
		},
		Options: printOpts,
		Role:    model.ManuscriptRole(opts.Role),
		Status:  model.ManuscriptStatus(opts.Status),
		Note:    opts.Note,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &UploadResult{
		Job:     fromInternalJob(resp.Job),
		Version: fromInternalVersion(resp.Version),
	}, nil
}

// ListVersions returns the manuscript version history, newest first.
func (c *Client) ListVersions(ctx context.Context) ([]ManuscriptVersion, error) {
	svc, err := versionlist.NewService(versionlist.ServiceConfig{
		Repository: c.manuscripts,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	versions, err := svc.Run(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]ManuscriptVersion, len(versions))
	for i, v := range versions {
		out[i] = fromInternalVersion(v)
	}
	return out, nil
}

// ApproveVersion marks the manuscript version as approved.
func (c *Client) ApproveVersion(ctx context.Context, versionID string) (*ManuscriptVersion, error) {
	svc, err := versionapprove.NewService(versionapprove.ServiceConfig{
		Repository: c.manuscripts,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	version, err := svc.Run(ctx, versionapprove.Request{VersionID: versionID})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalVersion(*version)
	return &result, nil
}

// RemoveVersion deletes a single manuscript version.
func (c *Client) RemoveVersion(ctx context.Context, versionID string) error {
	svc, err := versionremove.NewService(versionremove.ServiceConfig{
		Repository: c.manuscripts,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	return mapError(svc.Run(ctx, versionremove.Request{VersionID: versionID}))
}

// ClearVersions deletes the whole manuscript version history.
func (c *Client) ClearVersions(ctx context.Context) error {
	svc, err := versionremove.NewService(versionremove.ServiceConfig{
		Repository: c.manuscripts,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	return mapError(svc.Run(ctx, versionremove.Request{All: true}))
}

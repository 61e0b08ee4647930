package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/app/upload"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/ui"
)

type UploadCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	file        string
	client      string
	title       string
	role        string
	status      string
	note        string
	projectType string
	paperSize   string
	colorMode   string
	finish      string
	weightGSM   int
	orientation string
	quantity    int
}

// NewUploadCommand returns the upload command.
func NewUploadCommand(rootCmd *RootCommand, app *kingpin.Application) *UploadCommand {
	c := &UploadCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("upload", "Upload a manuscript PDF and create its print job.")
	c.Cmd.Arg("file", "Path to the manuscript PDF.").Required().StringVar(&c.file)
	c.Cmd.Flag("client", "Client name.").Short('c').Required().StringVar(&c.client)
	c.Cmd.Flag("title", "Job title (defaults to the file name).").Short('t').StringVar(&c.title)
	c.Cmd.Flag("role", "Uploader role (Author, Editor).").Default(string(model.ManuscriptRoleAuthor)).StringVar(&c.role)
	c.Cmd.Flag("status", "Initial manuscript status (Draft, Proof Sent, Approved).").Default(string(model.ManuscriptStatusDraft)).StringVar(&c.status)
	c.Cmd.Flag("note", "Free-form note for the version history.").StringVar(&c.note)

	// Print option flags.
	c.Cmd.Flag("project-type", "Project type (Auto, Academic, Trade, Promotional).").Default("Auto").StringVar(&c.projectType)
	c.Cmd.Flag("paper-size", "Paper size (A4, A5, Letter...).").StringVar(&c.paperSize)
	c.Cmd.Flag("color-mode", "Color mode (Full Color, Monochrome, CMYK + Spot...).").StringVar(&c.colorMode)
	c.Cmd.Flag("finish", "Finish (Matte, Gloss, Super Gloss...).").StringVar(&c.finish)
	c.Cmd.Flag("weight", "Paper weight in GSM.").IntVar(&c.weightGSM)
	c.Cmd.Flag("orientation", "Page orientation (Portrait, Landscape).").StringVar(&c.orientation)
	c.Cmd.Flag("quantity", "Number of copies.").Default("1").IntVar(&c.quantity)

	return c
}

func (c UploadCommand) Name() string { return c.Cmd.FullCommand() }

func (c UploadCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Describe the file without reading it, only name, size and type matter.
	info, err := os.Stat(c.file)
	if err != nil {
		return fmt.Errorf("could not stat manuscript file: %w", err)
	}
	file := model.ManuscriptFile{
		Name:      filepath.Base(c.file),
		SizeBytes: info.Size(),
		MediaType: mediaTypeFor(c.file),
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}
	defer repo.Close()

	// Create services.
	createSvc, err := jobcreate.NewService(jobcreate.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create job service: %w", err)
	}

	svc, err := upload.NewService(upload.ServiceConfig{
		JobCreate:   createSvc,
		Manuscripts: repo,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("could not create upload service: %w", err)
	}

	// Execute upload.
	resp, err := svc.Run(ctx, upload.Request{
		Client: c.client,
		Title:  c.title,
		File:   file,
		Options: &model.PrintOptions{
			ProjectType: c.projectType,
			PaperSize:   c.paperSize,
			ColorMode:   c.colorMode,
			Finish:      c.finish,
			WeightGSM:   c.weightGSM,
			Orientation: c.orientation,
			Quantity:    c.quantity,
		},
		Role:   model.ManuscriptRole(c.role),
		Status: model.ManuscriptStatus(c.status),
		Note:   c.note,
	})
	if err != nil {
		return fmt.Errorf("could not upload manuscript: %w", err)
	}

	c.rootCmd.Notifier().Notify(ui.Notification{
		Title:   "Manuscript uploaded",
		Message: fmt.Sprintf("%s created job %s (%s, %d copies)", resp.Version.FileName, resp.Job.ID, resp.Job.Type, resp.Job.Quantity),
		Variant: ui.VariantSuccess,
	})

	return nil
}

func mediaTypeFor(path string) string {
	if filepath.Ext(path) == ".pdf" {
		return "application/pdf"
	}
	return "application/octet-stream"
}

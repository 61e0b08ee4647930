package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	storageio "github.com/makspress/pressline/internal/storage/io"
	"github.com/makspress/pressline/internal/ui"
	"github.com/makspress/pressline/internal/workflow"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug        bool
	NoLog        bool
	NoColor      bool
	LoggerType   string
	DBPath       string
	StagesConfig string
	Yes          bool

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("yes", "Skip confirmation prompts.").Short('y').BoolVar(&c.Yes)

	defaultDBPath := filepath.Join(homedir.HomeDir(), ".pressline", "pressline.db")
	app.Flag("db-path", "Path to the SQLite database file.").Envar("PRESSLINE_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)
	app.Flag("stages-config", "Path to a YAML stage catalog overriding the built-in workflow.").Envar("PRESSLINE_STAGES_CONFIG").StringVar(&c.StagesConfig)

	return c
}

// Engine builds the workflow engine, loading the stage catalog from the
// configured YAML file or falling back to the built-in workflow.
func (c *RootCommand) Engine(ctx context.Context) (*workflow.Engine, error) {
	catalog := model.DefaultStageCatalog()

	if c.StagesConfig != "" {
		abs, err := filepath.Abs(c.StagesConfig)
		if err != nil {
			return nil, fmt.Errorf("could not resolve stages config path: %w", err)
		}
		loader := storageio.NewCatalogYAMLRepository(os.DirFS(filepath.Dir(abs)))
		catalog, err = loader.GetCatalog(ctx, filepath.Base(abs))
		if err != nil {
			return nil, fmt.Errorf("could not load stage catalog: %w", err)
		}
	}

	engine, err := workflow.NewEngine(workflow.EngineConfig{Catalog: catalog})
	if err != nil {
		return nil, fmt.Errorf("could not create workflow engine: %w", err)
	}

	return engine, nil
}

// parseSortOrder maps the lowercase CLI flag value to the model sort order.
func parseSortOrder(s string) model.SortOrder {
	if s == "oldest" {
		return model.SortOldest
	}
	return model.SortNewest
}

// Confirmer returns the confirmer for destructive commands. With --yes the
// prompt is skipped and every question resolves to true.
func (c *RootCommand) Confirmer() ui.Confirmer {
	if c.Yes {
		return ui.StaticConfirmer(true)
	}
	return ui.NewPromptConfirmer(c.Stdin, c.Stdout)
}

// Notifier returns the notifier used for command result toasts.
func (c *RootCommand) Notifier() ui.Notifier {
	return ui.NewWriterNotifier(c.Stdout)
}

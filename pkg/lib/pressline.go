package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage"
	"github.com/makspress/pressline/internal/storage/memory"
	"github.com/makspress/pressline/internal/storage/sqlite"
	"github.com/makspress/pressline/internal/workflow"
)

const (
	defaultDataDir = ".pressline"
	defaultDBFile  = "pressline.db"
)

// Config configures the SDK client.
//
// All fields are optional and have sensible defaults. At minimum, an empty
// Config{} will use ~/.pressline/pressline.db for storage and the built-in
// five stage workflow.
type Config struct {
	// DBPath is the SQLite database path.
	// Default: ~/.pressline/pressline.db. Ignored when InMemory is set.
	DBPath string

	// InMemory keeps all state in process memory instead of SQLite. The
	// board starts empty and vanishes when the client is gone, like the
	// original session-only tracker. Useful for tests.
	InMemory bool

	// Stages overrides the built-in workflow catalog. Stage names must be
	// unique and non-empty.
	Stages []Stage

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.DBPath == "" && !c.InMemory {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DBPath = filepath.Join(home, defaultDataDir, defaultDBFile)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for tracking print jobs programmatically.
//
// Create a Client with [New] and release its resources with [Client.Close].
// A Client is safe for concurrent use.
type Client struct {
	jobs        storage.JobRepository
	users       storage.UserRepository
	manuscripts storage.ManuscriptRepository
	engine      *workflow.Engine
	logger      log.Logger
	closeFn     func() error
}

// New creates a new SDK client.
//
// The caller must call [Client.Close] when done to release the database
// connection. Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	catalog := model.DefaultStageCatalog()
	if len(cfg.Stages) > 0 {
		stages := make([]model.Stage, len(cfg.Stages))
		for i, st := range cfg.Stages {
			stages[i] = model.Stage{Name: st.Name, SubSteps: st.SubSteps}
		}
		var err error
		catalog, err = model.NewStageCatalog(stages)
		if err != nil {
			return nil, mapError(fmt.Errorf("invalid stage catalog: %w", err))
		}
	}

	engine, err := workflow.NewEngine(workflow.EngineConfig{Catalog: catalog})
	if err != nil {
		return nil, fmt.Errorf("could not create workflow engine: %w", err)
	}

	c := &Client{
		engine: engine,
		logger: cfg.Logger,
	}

	if cfg.InMemory {
		jobs, err := memory.NewRepository(memory.RepositoryConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not create repository: %w", err)
		}
		c.jobs = jobs
		c.users = memory.NewUserRepository()
		c.manuscripts = memory.NewManuscriptRepository()
		c.closeFn = func() error { return nil }
		return c, nil
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	c.jobs = repo
	c.users = repo
	c.manuscripts = repo
	c.closeFn = repo.Close

	return c, nil
}

// Close releases resources held by the client, including the database
// connection. After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

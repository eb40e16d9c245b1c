package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/hcl"
	"github.com/specialistvlad/coursegrid/internal/tracker"
	"github.com/specialistvlad/coursegrid/internal/yamlcatalog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	id      string
	ctx     context.Context
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
	catalog *catalog.Catalog
	tracker tracker.Tracker
	render  *renderer
}

// defaultLoaders returns every catalog format compiled into the binary.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlcatalog.NewLoader()}
}

// NewApp is the constructor for the main application. Session output goes to
// outW and logs to logW. It loads the catalog, builds the tracker and applies
// the configured initial approvals.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) (*App, error) {
	id := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("session", id)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	a := &App{
		id:      id,
		ctx:     ctx,
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: loaders,
		render:  newRenderer(appConfig.Color),
	}

	if err := a.LoadCatalog(); err != nil {
		return nil, err
	}
	if err := a.ApplyInitialApprovals(); err != nil {
		return nil, err
	}
	return a, nil
}

// SessionID returns the identifier attached to every log record of this app.
func (a *App) SessionID() string {
	return a.id
}

// Catalog returns the loaded catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Tracker returns the session tracker. This is primarily for testing.
func (a *App) Tracker() tracker.Tracker {
	return a.tracker
}

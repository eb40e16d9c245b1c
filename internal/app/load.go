package app

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/inmemorystore"
	"github.com/specialistvlad/coursegrid/internal/tracker"
)

// LoadCatalog runs every loader over the configured paths, builds the
// catalog and starts a fresh tracker on an empty state store.
func (a *App) LoadCatalog() error {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Loading catalog...", "paths", a.config.CatalogPaths)

	model := &config.Model{}
	for _, loader := range a.loaders {
		m, err := loader.Load(a.ctx, a.config.CatalogPaths...)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		logger.Debug("Loader finished.", "extensions", strings.Join(loader.Extensions(), ","), "courses", len(m.Courses), "aliases", len(m.Aliases))
		model.Merge(m)
	}
	if len(model.Courses) == 0 {
		return fmt.Errorf("no courses found in %s", strings.Join(a.config.CatalogPaths, ", "))
	}

	cat, err := catalog.Build(a.ctx, model, catalog.WithParseCacheSize(a.config.CacheSize))
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	t, err := tracker.New(a.ctx, cat, inmemorystore.New())
	if err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}

	a.catalog = cat
	a.tracker = t
	logger.Info("Catalog loaded successfully.", "courses", cat.Len(), "terms", len(cat.Terms()), "diagnostics", len(cat.Diagnostics()))
	return nil
}

// ApplyInitialApprovals approves the courses named in the configuration.
// Names that stay locked or are unknown are reported on the session output.
func (a *App) ApplyInitialApprovals() error {
	if len(a.config.Approve) == 0 {
		return nil
	}
	rejected, err := a.tracker.ApproveAll(a.ctx, a.config.Approve)
	if err != nil {
		return fmt.Errorf("failed to apply approvals: %w", err)
	}
	for _, name := range rejected {
		fmt.Fprintf(a.outW, "could not approve %q: unknown or still locked\n", name)
	}
	return nil
}

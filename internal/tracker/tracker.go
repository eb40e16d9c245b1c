package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/propagate"
	"github.com/specialistvlad/coursegrid/internal/statestore"
)

// Manager implements Tracker on top of a catalog and a state store.
type Manager struct {
	catalog *catalog.Catalog
	store   statestore.Store
}

var _ Tracker = (*Manager)(nil)

// New creates a tracker and runs the initial recompute, so every course
// starts Available or Locked according to the approvals already in store.
func New(ctx context.Context, cat *catalog.Catalog, store statestore.Store) (*Manager, error) {
	m := &Manager{catalog: cat, store: store}
	if err := m.Recompute(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Catalog returns the catalog the tracker works on.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Resolve maps a user supplied name to its catalog course.
func (m *Manager) Resolve(name string) (*catalog.Course, error) {
	course, ok := m.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, name)
	}
	return course, nil
}

func (m *Manager) Recompute(ctx context.Context) error {
	approved, err := m.store.Approved(ctx)
	if err != nil {
		return fmt.Errorf("failed to read approvals: %w", err)
	}
	states := propagate.Recompute(m.catalog, approved)
	if err := m.store.ReplaceStates(ctx, states); err != nil {
		return fmt.Errorf("failed to store states: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("States recomputed.",
		"approved", states.Count(catalog.Approved),
		"available", states.Count(catalog.Available),
		"locked", states.Count(catalog.Locked),
	)
	return nil
}

func (m *Manager) Approve(ctx context.Context, name string) (*catalog.Course, error) {
	course, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	state, _, err := m.store.State(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	switch state {
	case catalog.Approved:
		return course, nil
	case catalog.Locked:
		return course, fmt.Errorf("%w: %s", ErrCourseLocked, course.DisplayName)
	}

	if err := m.store.SetApproved(ctx, course.ID, true); err != nil {
		return nil, fmt.Errorf("failed to approve %q: %w", course.DisplayName, err)
	}
	if err := m.Recompute(ctx); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Course approved.", "course", course.DisplayName, "credits", course.Credits)
	return course, nil
}

func (m *Manager) Unapprove(ctx context.Context, name string) (*catalog.Course, error) {
	course, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	approved, err := m.store.IsApproved(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return course, nil
	}

	if err := m.store.SetApproved(ctx, course.ID, false); err != nil {
		return nil, fmt.Errorf("failed to unapprove %q: %w", course.DisplayName, err)
	}
	if err := m.Recompute(ctx); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Course unapproved.", "course", course.DisplayName)
	return course, nil
}

func (m *Manager) Toggle(ctx context.Context, name string) (*catalog.Course, catalog.State, error) {
	course, err := m.Resolve(name)
	if err != nil {
		return nil, catalog.Locked, err
	}
	approved, err := m.store.IsApproved(ctx, course.ID)
	if err != nil {
		return nil, catalog.Locked, err
	}
	if approved {
		_, err = m.Unapprove(ctx, course.ID)
	} else {
		_, err = m.Approve(ctx, course.ID)
	}
	if err != nil {
		return course, catalog.Locked, err
	}
	state, _, err := m.store.State(ctx, course.ID)
	return course, state, err
}

func (m *Manager) ApproveAll(ctx context.Context, names []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	var unknown []string
	pending := make([]string, 0, len(names))
	for _, name := range names {
		if _, err := m.Resolve(name); err != nil {
			unknown = append(unknown, name)
			continue
		}
		pending = append(pending, name)
	}

	for len(pending) > 0 {
		var stillLocked []string
		for _, name := range pending {
			_, err := m.Approve(ctx, name)
			switch {
			case err == nil:
			case errors.Is(err, ErrCourseLocked):
				stillLocked = append(stillLocked, name)
			default:
				return nil, err
			}
		}
		if len(stillLocked) == len(pending) {
			break
		}
		pending = stillLocked
	}

	rejected := append(unknown, pending...)
	if len(rejected) > 0 {
		logger.Warn("Some approvals could not be applied.", "names", rejected)
	}
	return rejected, nil
}

func (m *Manager) State(ctx context.Context, name string) (catalog.State, error) {
	course, err := m.Resolve(name)
	if err != nil {
		return catalog.Locked, err
	}
	state, _, err := m.store.State(ctx, course.ID)
	return state, err
}

func (m *Manager) ApprovedCredits(ctx context.Context) (int, error) {
	approved, err := m.store.Approved(ctx)
	if err != nil {
		return 0, err
	}
	return propagate.ApprovedCredits(m.catalog, approved), nil
}

func (m *Manager) ApprovedSet(ctx context.Context) ([]string, error) {
	approved, err := m.store.Approved(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(approved))
	for id := range approved {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *Manager) UnsatisfiedReasons(ctx context.Context, name string) ([]string, error) {
	course, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	state, _, err := m.store.State(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	if state != catalog.Locked {
		return nil, nil
	}
	approved, err := m.store.Approved(ctx)
	if err != nil {
		return nil, err
	}
	return propagate.Explain(m.catalog, course, propagate.NewStanding(m.catalog, approved)), nil
}

func (m *Manager) Summary(ctx context.Context) (Summary, error) {
	states, err := m.store.States(ctx)
	if err != nil {
		return Summary{}, err
	}
	credits, err := m.ApprovedCredits(ctx)
	if err != nil {
		return Summary{}, err
	}
	assignment := propagate.Assignment(states)
	return Summary{
		Locked:          assignment.Count(catalog.Locked),
		Available:       assignment.Count(catalog.Available),
		Approved:        assignment.Count(catalog.Approved),
		ApprovedCredits: credits,
		TotalCredits:    m.catalog.TotalCredits(),
	}, nil
}

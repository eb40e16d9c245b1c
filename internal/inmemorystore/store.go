package inmemorystore

import (
	"context"
	"maps"

	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/statestore"
)

// Store is a map-backed implementation of statestore.Store.
//
// The store maintains two independent maps:
//   - approved: the set of course ids the user marked as completed
//   - states: the last assignment written by a full recompute
//
// A session has exactly one writer, so the maps are not guarded by locks.
type Store struct {
	approved map[string]struct{}
	states   map[string]catalog.State
}

// New creates a new, empty in-memory state store.
func New() statestore.Store {
	return &Store{
		approved: make(map[string]struct{}),
		states:   make(map[string]catalog.State),
	}
}

// SetApproved sets or clears the approval flag of a course.
func (s *Store) SetApproved(ctx context.Context, id string, approved bool) error {
	if approved {
		s.approved[id] = struct{}{}
	} else {
		delete(s.approved, id)
	}
	return nil
}

// IsApproved reports whether a course carries the approval flag.
func (s *Store) IsApproved(ctx context.Context, id string) (bool, error) {
	_, ok := s.approved[id]
	return ok, nil
}

// Approved returns a copy of the approved id set.
func (s *Store) Approved(ctx context.Context) (map[string]struct{}, error) {
	return maps.Clone(s.approved), nil
}

// ReplaceStates stores a copy of a full state assignment.
func (s *Store) ReplaceStates(ctx context.Context, states map[string]catalog.State) error {
	s.states = maps.Clone(states)
	if s.states == nil {
		s.states = make(map[string]catalog.State)
	}
	return nil
}

// State returns the recorded state of a course, or Locked and false.
func (s *Store) State(ctx context.Context, id string) (catalog.State, bool, error) {
	state, ok := s.states[id]
	if !ok {
		return catalog.Locked, false, nil
	}
	return state, true, nil
}

// States returns a copy of the recorded assignment.
func (s *Store) States(ctx context.Context) (map[string]catalog.State, error) {
	return maps.Clone(s.states), nil
}

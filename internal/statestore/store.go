// Package statestore defines the interface for storing the mutable part of a
// study session: which courses the user approved and the course states
// derived from those approvals.
//
// # Why State Store Exists
//
// The catalog is structurally immutable once built. Everything that changes
// while the user works through the curriculum lives here instead, so the
// catalog can be shared freely and the session state can be swapped for a
// different backend without touching the catalog or the propagator.
//
// # Lifecycle and Usage
//
// The state store is:
//  1. **Created** once per session (ephemeral, nothing is persisted)
//  2. **Seeded** by the tracker with the first full recompute
//  3. **Mutated** only by the tracker: an approval flag change is always
//     followed by ReplaceStates with a complete recompute
//  4. **Discarded** when the session ends
//
// # Write Discipline
//
// Approval flags are the only input. States are derived output; callers must
// never set a single state by hand, they replace the whole assignment.
package statestore

import (
	"context"

	"github.com/specialistvlad/coursegrid/internal/catalog"
)

// Store is the interface for the approval flags and derived states of one
// session. Course ids are canonical, normalized names.
//
// Implementations are not required to be safe for concurrent use; a session
// has a single writer.
//
// # Typical Implementation
//
// See internal/inmemorystore for the map-backed implementation.
type Store interface {
	// SetApproved sets or clears the approval flag of a course.
	//
	// The store does not validate catalog membership; the tracker resolves
	// names before calling it.
	SetApproved(ctx context.Context, id string, approved bool) error

	// IsApproved reports the approval flag of a course. Unknown ids are not
	// approved.
	IsApproved(ctx context.Context, id string) (bool, error)

	// Approved returns a copy of the approved id set.
	Approved(ctx context.Context) (map[string]struct{}, error)

	// ReplaceStates swaps in a complete state assignment produced by a full
	// recompute. The store keeps its own copy.
	ReplaceStates(ctx context.Context, states map[string]catalog.State) error

	// State returns the last derived state of a course. It returns Locked and
	// false if the course has no recorded state.
	State(ctx context.Context, id string) (catalog.State, bool, error)

	// States returns a copy of the last derived assignment.
	States(ctx context.Context) (map[string]catalog.State, error)
}

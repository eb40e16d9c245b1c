// Package tracker provides the single entry point a view talks to: it
// applies approve and unapprove commands, keeps the derived states current
// and answers state, credit and reason queries.
//
// # Responsibilities
//
// The tracker orchestrates three collaborators:
//   - **Catalog** (catalog.Catalog): immutable courses and cached requirements
//   - **State Store** (statestore.Store): approval flags and derived states
//   - **Propagator** (propagate.Recompute): full recompute after every change
//
// Every mutation is followed by a full recompute before it returns, so a
// query never observes a stale state.
package tracker

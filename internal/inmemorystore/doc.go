// Package inmemorystore provides an ephemeral, in-memory implementation of
// the statestore.Store interface. It is suitable for interactive sessions
// and tests, where nothing needs to outlive the process.
package inmemorystore

// Package catalog owns the course records of a curriculum, the alias table
// and each course's parsed requirements.
//
// A Catalog is built once from a config.Model and is structurally immutable
// afterwards. Per-course availability is not stored here; it is derived by
// the propagate package and held by a statestore.Store.
package catalog

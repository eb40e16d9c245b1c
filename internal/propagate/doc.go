// Package propagate derives the state of every course from the set of
// approved courses. It never updates incrementally: each call recomputes the
// whole catalog, so withdrawing an approval re-locks every dependent whose
// requirements stop holding.
package propagate

package tracker

import (
	"context"
	"errors"

	"github.com/specialistvlad/coursegrid/internal/catalog"
)

var (
	// ErrUnknownCourse is returned when a name matches no course or alias.
	ErrUnknownCourse = errors.New("unknown course")
	// ErrCourseLocked is returned when approving a course whose requirements
	// do not hold.
	ErrCourseLocked = errors.New("course is locked")
)

// Summary aggregates the session for display.
type Summary struct {
	Locked          int
	Available       int
	Approved        int
	ApprovedCredits int
	TotalCredits    int
}

// Tracker is the mutation and query surface of a study session. Course
// arguments accept any spelling of a course name or one of its aliases.
type Tracker interface {
	// Approve marks a course as completed. Approving an approved course is a
	// no-op; approving a locked one fails with ErrCourseLocked.
	Approve(ctx context.Context, name string) (*catalog.Course, error)
	// Unapprove clears a course's approval. Dependents whose requirements
	// stop holding become Locked again.
	Unapprove(ctx context.Context, name string) (*catalog.Course, error)
	// Toggle approves a course that is not approved and unapproves one that is.
	Toggle(ctx context.Context, name string) (*catalog.Course, catalog.State, error)
	// ApproveAll approves names in as many passes as needed, so order does
	// not matter. It returns the names that stayed locked or are unknown.
	ApproveAll(ctx context.Context, names []string) ([]string, error)
	// Recompute rederives every state from the approval flags.
	Recompute(ctx context.Context) error

	State(ctx context.Context, name string) (catalog.State, error)
	ApprovedCredits(ctx context.Context) (int, error)
	// ApprovedSet returns the approved canonical names, sorted.
	ApprovedSet(ctx context.Context) ([]string, error)
	// UnsatisfiedReasons explains a Locked course. It is empty for any other state.
	UnsatisfiedReasons(ctx context.Context, name string) ([]string, error)
	Summary(ctx context.Context) (Summary, error)

	Resolve(name string) (*catalog.Course, error)
	Catalog() *catalog.Catalog
}

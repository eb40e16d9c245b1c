package catalog

import (
	"fmt"

	"github.com/specialistvlad/coursegrid/internal/requirement"
)

// State is the availability of a course for the current approvals.
type State int

const (
	// Locked means at least one requirement does not hold.
	Locked State = iota
	// Available means every requirement holds and the course is not approved.
	Available
	// Approved means the user marked the course as completed.
	Approved
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Available:
		return "available"
	case Approved:
		return "approved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Course is one immutable catalog entry.
type Course struct {
	// ID is the canonical, normalized name and the unique key.
	ID string
	// DisplayName is the name as written in the catalog file.
	DisplayName string
	Credits     int
	// Term is the 1-based term index, 0 when the course has no term.
	Term int
	// RawRequisites is the prerequisite text as written.
	RawRequisites string
	// Requirements is parsed once from RawRequisites at build time.
	Requirements requirement.Set
	// Source points at the definition, e.g. a file name.
	Source string
}

// HasTerm reports whether the course is scheduled in a term.
func (c *Course) HasTerm() bool {
	return c.Term > 0
}

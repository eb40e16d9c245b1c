package propagate

import (
	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/requirement"
)

// Assignment maps a course id to its state.
type Assignment map[string]catalog.State

// Count returns how many courses are in state s.
func (a Assignment) Count(s catalog.State) int {
	n := 0
	for _, state := range a {
		if state == s {
			n++
		}
	}
	return n
}

// ApprovedCredits sums the credits of approved courses. Ids that are not in
// the catalog contribute nothing.
func ApprovedCredits(cat *catalog.Catalog, approved map[string]struct{}) int {
	total := 0
	for id := range approved {
		if course, ok := cat.Course(id); ok {
			total += course.Credits
		}
	}
	return total
}

// NewStanding builds the evaluation input for the given approvals.
func NewStanding(cat *catalog.Catalog, approved map[string]struct{}) requirement.Standing {
	return requirement.Standing{
		Approved: approved,
		Credits:  ApprovedCredits(cat, approved),
		Roster:   cat,
	}
}

// Recompute returns a fresh state for every catalog course. Approved courses
// stay Approved; every other course is Available when all of its cached
// requirements hold and Locked otherwise.
func Recompute(cat *catalog.Catalog, approved map[string]struct{}) Assignment {
	standing := NewStanding(cat, approved)
	out := make(Assignment, cat.Len())
	for _, course := range cat.Courses() {
		switch {
		case standing.IsApproved(course.ID):
			out[course.ID] = catalog.Approved
		case requirement.Evaluate(course.Requirements, standing):
			out[course.ID] = catalog.Available
		default:
			out[course.ID] = catalog.Locked
		}
	}
	return out
}

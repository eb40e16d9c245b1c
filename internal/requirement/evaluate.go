package requirement

// Roster answers which courses are scheduled up to and including a term.
type Roster interface {
	CoursesThroughTerm(n int) []string
}

// Standing is the academic position requirements are evaluated against.
type Standing struct {
	// Approved holds the canonical names of approved courses.
	Approved map[string]struct{}
	// Credits is the sum of credits over approved catalog courses.
	Credits int
	// Roster resolves term membership. A nil Roster treats every term as empty.
	Roster Roster
}

// NewStanding builds a Standing from a list of approved canonical names.
func NewStanding(approved []string, credits int, roster Roster) Standing {
	set := make(map[string]struct{}, len(approved))
	for _, name := range approved {
		set[name] = struct{}{}
	}
	return Standing{Approved: set, Credits: credits, Roster: roster}
}

// IsApproved reports whether name is in the approved set.
func (s Standing) IsApproved(name string) bool {
	_, ok := s.Approved[name]
	return ok
}

// AllApprovedThroughTerm reports whether every course in terms 1..n is approved.
func (s Standing) AllApprovedThroughTerm(n int) bool {
	if s.Roster == nil {
		return true
	}
	for _, name := range s.Roster.CoursesThroughTerm(n) {
		if !s.IsApproved(name) {
			return false
		}
	}
	return true
}

// Holds reports whether a single requirement is met.
func Holds(r Requirement, s Standing) bool {
	switch req := r.(type) {
	case CourseRef:
		return s.IsApproved(req.Name)
	case CreditThreshold:
		return s.Credits >= req.Min
	case SemesterCompletionThreshold:
		return s.AllApprovedThroughTerm(req.Through)
	case Unsatisfiable:
		return false
	default:
		return false
	}
}

// Evaluate reports whether every requirement in set holds.
func Evaluate(set Set, s Standing) bool {
	for _, r := range set {
		if !Holds(r, s) {
			return false
		}
	}
	return true
}

// Unmet returns the requirements of set that do not hold, preserving order.
func Unmet(set Set, s Standing) []Requirement {
	var unmet []Requirement
	for _, r := range set {
		if !Holds(r, s) {
			unmet = append(unmet, r)
		}
	}
	return unmet
}

package requirement

import "fmt"

// Kind tags the concrete variant of a Requirement.
type Kind int

const (
	KindCourseRef Kind = iota
	KindCreditThreshold
	KindSemesterCompletion
	KindUnsatisfiable
)

func (k Kind) String() string {
	switch k {
	case KindCourseRef:
		return "course"
	case KindCreditThreshold:
		return "credits"
	case KindSemesterCompletion:
		return "semester"
	case KindUnsatisfiable:
		return "unsatisfiable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Requirement is a single gating condition. The set of implementations is
// closed to this package.
type Requirement interface {
	Kind() Kind
	String() string
	isRequirement()
}

// CourseRef requires the course with the given canonical name to be approved.
// The name may not exist in the catalog, in which case it never holds.
type CourseRef struct {
	Name string
}

func (CourseRef) Kind() Kind       { return KindCourseRef }
func (r CourseRef) String() string { return fmt.Sprintf("course %q", r.Name) }
func (CourseRef) isRequirement()   {}

// CreditThreshold requires at least Min approved credits.
type CreditThreshold struct {
	Min int
}

func (CreditThreshold) Kind() Kind       { return KindCreditThreshold }
func (r CreditThreshold) String() string { return fmt.Sprintf("%d credits", r.Min) }
func (CreditThreshold) isRequirement()   {}

// SemesterCompletionThreshold requires every course in terms 1..Through to be
// approved. Courses without a term never count against it.
type SemesterCompletionThreshold struct {
	Through int
}

func (SemesterCompletionThreshold) Kind() Kind { return KindSemesterCompletion }
func (r SemesterCompletionThreshold) String() string {
	return fmt.Sprintf("terms 1-%d approved", r.Through)
}
func (SemesterCompletionThreshold) isRequirement() {}

// Unsatisfiable stands in for a recognised clause whose value could not be
// read. It keeps the course locked instead of silently dropping the clause.
type Unsatisfiable struct {
	Clause string
	Reason string
}

func (Unsatisfiable) Kind() Kind       { return KindUnsatisfiable }
func (r Unsatisfiable) String() string { return fmt.Sprintf("unreadable clause %q", r.Clause) }
func (Unsatisfiable) isRequirement()   {}

// Set is a conjunction of requirements.
type Set []Requirement

// CourseRefs returns the canonical names referenced by the set, in order.
func (s Set) CourseRefs() []string {
	var names []string
	for _, r := range s {
		if ref, ok := r.(CourseRef); ok {
			names = append(names, ref.Name)
		}
	}
	return names
}

// IsEmpty reports whether the set imposes no condition at all.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

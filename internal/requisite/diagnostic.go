package requisite

import "fmt"

// DiagnosticKind classifies a problem found while reading requisite text.
type DiagnosticKind int

const (
	// MalformedRequisiteText marks a recognised clause whose number could not be read.
	MalformedRequisiteText DiagnosticKind = iota
	// UnknownCourseReference marks a name that resolves to no catalog course.
	UnknownCourseReference
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedRequisiteText:
		return "malformed-requisite-text"
	case UnknownCourseReference:
		return "unknown-course-reference"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic describes one local parse problem. It never aborts parsing.
type Diagnostic struct {
	Kind    DiagnosticKind
	Clause  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

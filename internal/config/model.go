package config

import (
	"errors"
	"fmt"
	"strings"
)

// Model is the unified, format-agnostic representation of a curriculum:
// every course descriptor in load order plus the static alias list.
type Model struct {
	Courses []*CourseDefinition
	Aliases []*AliasDefinition
}

// CourseDefinition is one course descriptor as written by catalog authors.
type CourseDefinition struct {
	// Name is the display name, e.g. "Cálculo I".
	Name string
	// Credits is the non-negative credit value of the course.
	Credits int
	// Term is the 1-based term index, or 0 when the course is not tied to a term.
	Term int
	// Requisites is the raw prerequisite text, possibly empty.
	Requisites string
	// Source identifies where the definition came from, for error messages.
	Source string
}

// AliasDefinition maps an abbreviation or variant spelling to a course name.
type AliasDefinition struct {
	Alias     string
	Canonical string
	Source    string
}

// Merge appends other's courses and aliases to m, preserving order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Courses = append(m.Courses, other.Courses...)
	m.Aliases = append(m.Aliases, other.Aliases...)
}

// Validate checks the structural rules every loader must uphold. It reports
// all violations at once.
func (m *Model) Validate() error {
	var errs []error
	for _, c := range m.Courses {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("%s: course name cannot be empty", c.Source))
		}
		if c.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s: course %q has negative credits %d", c.Source, c.Name, c.Credits))
		}
		if c.Term < 0 {
			errs = append(errs, fmt.Errorf("%s: course %q has invalid term %d", c.Source, c.Name, c.Term))
		}
	}
	for _, a := range m.Aliases {
		if strings.TrimSpace(a.Alias) == "" || strings.TrimSpace(a.Canonical) == "" {
			errs = append(errs, fmt.Errorf("%s: alias %q -> %q must have both sides", a.Source, a.Alias, a.Canonical))
		}
	}
	return errors.Join(errs...)
}

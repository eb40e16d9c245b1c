package catalog

import (
	"fmt"

	"github.com/specialistvlad/coursegrid/internal/requisite"
)

// Diagnostic is a non-fatal catalog problem worth showing to maintainers.
// CourseID is empty for problems not tied to one course, such as an alias
// pointing at a missing course.
type Diagnostic struct {
	CourseID string
	requisite.Diagnostic
}

func (d Diagnostic) String() string {
	if d.CourseID == "" {
		return d.Diagnostic.String()
	}
	return fmt.Sprintf("%s: %s", d.CourseID, d.Diagnostic.String())
}

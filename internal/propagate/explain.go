package propagate

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/requirement"
)

// Explain lists, in requirement order, why course is not available under
// standing. It returns nil when every requirement holds.
func Explain(cat *catalog.Catalog, course *catalog.Course, standing requirement.Standing) []string {
	unmet := requirement.Unmet(course.Requirements, standing)
	if len(unmet) == 0 {
		return nil
	}
	reasons := make([]string, 0, len(unmet))
	for _, r := range unmet {
		reasons = append(reasons, describe(cat, r, standing))
	}
	return reasons
}

func describe(cat *catalog.Catalog, r requirement.Requirement, standing requirement.Standing) string {
	switch req := r.(type) {
	case requirement.CourseRef:
		if course, ok := cat.Course(req.Name); ok {
			return fmt.Sprintf("approve %s", course.DisplayName)
		}
		return fmt.Sprintf("%q is not in the catalog", req.Name)
	case requirement.CreditThreshold:
		return fmt.Sprintf("reach %d approved credits (currently %d)", req.Min, standing.Credits)
	case requirement.SemesterCompletionThreshold:
		var missing []string
		for _, id := range cat.CoursesThroughTerm(req.Through) {
			if standing.IsApproved(id) {
				continue
			}
			if course, ok := cat.Course(id); ok {
				missing = append(missing, course.DisplayName)
			}
		}
		return fmt.Sprintf("approve every course through term %d (missing: %s)", req.Through, strings.Join(missing, ", "))
	case requirement.Unsatisfiable:
		return fmt.Sprintf("requisite %q cannot be read: %s", req.Clause, req.Reason)
	default:
		return r.String()
	}
}

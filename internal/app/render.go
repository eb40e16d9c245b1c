package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/specialistvlad/coursegrid/internal/catalog"
	"github.com/specialistvlad/coursegrid/internal/tracker"
)

// renderer formats session output. With colour enabled, state labels are
// painted; otherwise output is plain text.
type renderer struct {
	color bool
}

func newRenderer(useColor bool) *renderer {
	return &renderer{color: useColor}
}

var stateMarks = map[catalog.State]string{
	catalog.Locked:    "[ ]",
	catalog.Available: "[-]",
	catalog.Approved:  "[x]",
}

func (r *renderer) state(s catalog.State) string {
	label := s.String()
	if !r.color {
		return label
	}
	switch s {
	case catalog.Approved:
		return color.Green.Sprint(label)
	case catalog.Available:
		return color.Cyan.Sprint(label)
	default:
		return color.Gray.Sprint(label)
	}
}

// list prints every course grouped by term, courses without a term last.
// Headers are written as rows of the same table so columns line up across
// groups.
func (r *renderer) list(w io.Writer, cat *catalog.Catalog, states map[string]catalog.State) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(c *catalog.Course) {
		s := states[c.ID]
		fmt.Fprintf(tw, "  %s\t%s\t%d cr\t%s\n", stateMarks[s], c.DisplayName, c.Credits, r.state(s))
	}

	for _, term := range cat.Terms() {
		fmt.Fprintf(tw, "Term %d\t\t\t\n", term)
		for _, id := range cat.CoursesInTerm(term) {
			if c, ok := cat.Course(id); ok {
				row(c)
			}
		}
	}

	var loose []*catalog.Course
	for _, c := range cat.Courses() {
		if !c.HasTerm() {
			loose = append(loose, c)
		}
	}
	if len(loose) > 0 {
		fmt.Fprint(tw, "No term\t\t\t\n")
		for _, c := range loose {
			row(c)
		}
	}
	tw.Flush()
}

// show prints the details of one course.
func (r *renderer) show(w io.Writer, c *catalog.Course, s catalog.State, reasons []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "course\t%s\n", c.DisplayName)
	fmt.Fprintf(tw, "id\t%s\n", c.ID)
	if c.HasTerm() {
		fmt.Fprintf(tw, "term\t%d\n", c.Term)
	} else {
		fmt.Fprintln(tw, "term\t-")
	}
	fmt.Fprintf(tw, "credits\t%d\n", c.Credits)
	fmt.Fprintf(tw, "state\t%s\n", r.state(s))
	requisites := strings.TrimSpace(c.RawRequisites)
	if requisites == "" {
		requisites = "-"
	}
	fmt.Fprintf(tw, "requisites\t%s\n", requisites)
	tw.Flush()
	r.reasons(w, reasons)
}

func (r *renderer) reasons(w io.Writer, reasons []string) {
	for _, reason := range reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
}

func (r *renderer) summary(w io.Writer, s tracker.Summary) {
	fmt.Fprintf(w, "%s %d, %s %d, %s %d, credits %d/%d\n",
		r.state(catalog.Approved), s.Approved,
		r.state(catalog.Available), s.Available,
		r.state(catalog.Locked), s.Locked,
		s.ApprovedCredits, s.TotalCredits,
	)
}

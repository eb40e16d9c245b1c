package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/coursegrid/internal/alias"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/normalize"
	"github.com/specialistvlad/coursegrid/internal/requisite"
)

// ErrDuplicateCanonicalName is returned by Build when two course definitions
// normalize to the same id.
var ErrDuplicateCanonicalName = errors.New("duplicate canonical course name")

// Catalog is the immutable set of courses plus the alias table.
type Catalog struct {
	courses     []*Course
	byID        map[string]*Course
	aliases     *alias.Table
	terms       map[int][]string
	termOrder   []int
	diagnostics []Diagnostic
}

type buildOptions struct {
	cacheSize int
}

// Option configures Build.
type Option func(*buildOptions)

// WithParseCacheSize bounds the requisite parse cache used during Build.
func WithParseCacheSize(size int) Option {
	return func(o *buildOptions) {
		o.cacheSize = size
	}
}

// Build validates model, assigns canonical ids, builds the alias table and
// parses every course's requisite text once.
func Build(ctx context.Context, model *config.Model, opts ...Option) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	options := buildOptions{cacheSize: requisite.DefaultCacheSize}
	for _, opt := range opts {
		opt(&options)
	}

	if model == nil {
		model = &config.Model{}
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog model: %w", err)
	}

	c := &Catalog{
		byID:  make(map[string]*Course, len(model.Courses)),
		terms: make(map[int][]string),
	}

	var dupErrs []error
	for _, def := range model.Courses {
		id := normalize.Name(def.Name)
		if prev, exists := c.byID[id]; exists {
			dupErrs = append(dupErrs, fmt.Errorf("%w: %q (%s) and %q (%s) both normalize to %q",
				ErrDuplicateCanonicalName, prev.DisplayName, prev.Source, def.Name, def.Source, id))
			continue
		}
		course := &Course{
			ID:            id,
			DisplayName:   def.Name,
			Credits:       def.Credits,
			Term:          def.Term,
			RawRequisites: def.Requisites,
			Source:        def.Source,
		}
		c.courses = append(c.courses, course)
		c.byID[id] = course
		if course.HasTerm() {
			c.terms[course.Term] = append(c.terms[course.Term], id)
		}
	}
	if len(dupErrs) > 0 {
		return nil, errors.Join(dupErrs...)
	}

	for term := range c.terms {
		c.termOrder = append(c.termOrder, term)
	}
	sort.Ints(c.termOrder)

	pairs := make([]alias.Pair, 0, len(model.Aliases))
	for _, a := range model.Aliases {
		pairs = append(pairs, alias.Pair{Alias: a.Alias, Canonical: a.Canonical})
	}
	c.aliases = alias.New(pairs)
	for _, key := range c.aliases.Keys() {
		target, _ := c.aliases.Lookup(key)
		if _, ok := c.byID[target]; !ok {
			c.diagnostics = append(c.diagnostics, Diagnostic{Diagnostic: requisite.Diagnostic{
				Kind:    requisite.UnknownCourseReference,
				Clause:  key,
				Message: fmt.Sprintf("alias %q points at %q, which is not in the catalog", key, target),
			}})
		}
	}

	ids := make([]string, len(c.courses))
	for i, course := range c.courses {
		ids[i] = course.ID
	}
	parser, err := requisite.NewParser(ids, c.aliases, requisite.WithCacheSize(options.cacheSize))
	if err != nil {
		return nil, err
	}

	for _, course := range c.courses {
		res := parser.Parse(course.RawRequisites)
		course.Requirements = res.Requirements
		for _, d := range res.Diagnostics {
			c.diagnostics = append(c.diagnostics, Diagnostic{CourseID: course.ID, Diagnostic: d})
		}
	}

	for _, d := range c.diagnostics {
		logger.Warn("Catalog diagnostic.", "course", d.CourseID, "kind", d.Kind.String(), "clause", d.Clause, "message", d.Message)
	}
	logger.Debug("Catalog built.",
		"courses", len(c.courses),
		"aliases", c.aliases.Len(),
		"terms", len(c.termOrder),
		"distinct_requisite_texts", parser.CacheLen(),
		"diagnostics", len(c.diagnostics),
	)
	return c, nil
}

// Courses returns every course in load order.
func (c *Catalog) Courses() []*Course {
	out := make([]*Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Course returns the course with the given canonical id.
func (c *Catalog) Course(id string) (*Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

// Lookup finds a course by any spelling of its name or by one of its aliases.
// An exact course name takes precedence over an alias with the same text.
func (c *Catalog) Lookup(name string) (*Course, bool) {
	id := normalize.Name(name)
	if course, ok := c.byID[id]; ok {
		return course, true
	}
	course, ok := c.byID[c.aliases.Resolve(id)]
	return course, ok
}

// Aliases returns the catalog's alias table.
func (c *Catalog) Aliases() *alias.Table {
	return c.aliases
}

// Diagnostics returns every problem found while building the catalog.
func (c *Catalog) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Terms returns the term indexes in use, ascending.
func (c *Catalog) Terms() []int {
	out := make([]int, len(c.termOrder))
	copy(out, c.termOrder)
	return out
}

// CoursesInTerm returns the ids scheduled in exactly term n, in load order.
func (c *Catalog) CoursesInTerm(n int) []string {
	return append([]string(nil), c.terms[n]...)
}

// CoursesThroughTerm returns the ids scheduled in terms 1..n. Courses
// without a term are never included.
func (c *Catalog) CoursesThroughTerm(n int) []string {
	var ids []string
	for _, term := range c.termOrder {
		if term > n {
			break
		}
		ids = append(ids, c.terms[term]...)
	}
	return ids
}

// TotalCredits sums the credits of every course.
func (c *Catalog) TotalCredits() int {
	total := 0
	for _, course := range c.courses {
		total += course.Credits
	}
	return total
}

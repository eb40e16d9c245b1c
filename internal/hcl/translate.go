// This file contains the logic for translating HCL schema structs into the
// format-agnostic catalog model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// translateFile converts one decoded file into a model. Term courses come
// first in block order, then the courses without a term.
func (l *Loader) translateFile(ctx context.Context, file string, root *schema.CatalogFile) (*config.Model, error) {
	model := &config.Model{}

	for _, a := range root.Aliases {
		model.Aliases = append(model.Aliases, &config.AliasDefinition{
			Alias:     a.Name,
			Canonical: a.Canonical,
			Source:    file,
		})
	}

	for _, term := range root.Terms {
		index, err := parseTermLabel(term.Index)
		if err != nil {
			return nil, err
		}
		for _, c := range term.Courses {
			def, err := l.translateCourse(ctx, file, c, index)
			if err != nil {
				return nil, err
			}
			model.Courses = append(model.Courses, def)
		}
	}

	for _, c := range root.Courses {
		def, err := l.translateCourse(ctx, file, c, 0)
		if err != nil {
			return nil, err
		}
		model.Courses = append(model.Courses, def)
	}
	return model, nil
}

// translateCourse converts a course block into the agnostic model.
func (l *Loader) translateCourse(ctx context.Context, file string, c *schema.Course, term int) (*config.CourseDefinition, error) {
	def := &config.CourseDefinition{
		Name:   c.Name,
		Term:   term,
		Source: file,
	}

	credits, err := evalAttribute(c.Credits)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", c.Name, err)
	}
	if !credits.IsNull() {
		if err := decodeValue(ctx, credits, &def.Credits); err != nil {
			return nil, fmt.Errorf("course %q: invalid credits: %w", c.Name, err)
		}
	}

	requisites, err := evalAttribute(c.Requisites)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", c.Name, err)
	}
	if !requisites.IsNull() {
		text, err := decodeRequisites(ctx, requisites)
		if err != nil {
			return nil, fmt.Errorf("course %q: invalid requisites: %w", c.Name, err)
		}
		def.Requisites = text
	}
	return def, nil
}

// parseTermLabel reads a term block label as a positive integer.
func parseTermLabel(label string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("term label %q must be a positive integer", label)
	}
	return n, nil
}

// evalAttribute evaluates an optional attribute without variables or
// functions. An omitted attribute evaluates to null.
func evalAttribute(expr hcl.Expression) (cty.Value, error) {
	if expr == nil {
		return nullValue, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nullValue, diags
	}
	return val, nil
}

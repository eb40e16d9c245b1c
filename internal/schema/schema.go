// Package schema holds the gohcl structs that describe a catalog file.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Alias represents an `alias` block mapping an abbreviation to a course name.
type Alias struct {
	Name      string `hcl:"name,label"`
	Canonical string `hcl:"canonical"`
}

// Course represents a `course` block. Credits and requisites are kept as raw
// expressions so the loader can accept several value shapes.
type Course struct {
	Name       string         `hcl:"name,label"`
	Credits    hcl.Expression `hcl:"credits,optional"`
	Requisites hcl.Expression `hcl:"requisites,optional"`
}

// Term represents a `term` block grouping the courses of one term. The label
// is the 1-based term index.
type Term struct {
	Index   string    `hcl:"index,label"`
	Courses []*Course `hcl:"course,block"`
}

// CatalogFile represents the top-level structure of a catalog file. Courses
// declared outside a term block have no term.
type CatalogFile struct {
	Aliases []*Alias  `hcl:"alias,block"`
	Terms   []*Term   `hcl:"term,block"`
	Courses []*Course `hcl:"course,block"`
}

package yamlcatalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions this loader reads.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML file under paths and merges them, in discovery
// order, into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		doc, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		fileModel, err := translate(file, doc)
		if err != nil {
			return nil, fmt.Errorf("failed to translate YAML file %s: %w", file, err)
		}
		model.Merge(fileModel)
	}

	logger.Debug("YAML loading complete.", "courses", len(model.Courses), "aliases", len(model.Aliases))
	return model, nil
}

// decode reads a single document. An empty file yields an empty document.
func decode(data []byte) (*document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &document{}, nil
		}
		return nil, err
	}
	return &doc, nil
}

func translate(file string, doc *document) (*config.Model, error) {
	model := &config.Model{}
	for _, a := range doc.Aliases {
		model.Aliases = append(model.Aliases, &config.AliasDefinition{
			Alias:     a.Alias,
			Canonical: a.Canonical,
			Source:    file,
		})
	}
	for _, term := range doc.Terms {
		if term.Index <= 0 {
			return nil, fmt.Errorf("term index %d must be a positive integer", term.Index)
		}
		for _, c := range term.Courses {
			model.Courses = append(model.Courses, courseDefinition(file, c, term.Index))
		}
	}
	for _, c := range doc.Courses {
		model.Courses = append(model.Courses, courseDefinition(file, c, 0))
	}
	return model, nil
}

func courseDefinition(file string, c courseEntry, term int) *config.CourseDefinition {
	return &config.CourseDefinition{
		Name:       c.Name,
		Credits:    c.Credits,
		Term:       term,
		Requisites: string(c.Requisites),
		Source:     file,
	}
}

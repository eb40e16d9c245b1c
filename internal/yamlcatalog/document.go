package yamlcatalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Aliases []aliasEntry  `yaml:"aliases"`
	Terms   []termEntry   `yaml:"terms"`
	Courses []courseEntry `yaml:"courses"`
}

type aliasEntry struct {
	Alias     string `yaml:"alias"`
	Canonical string `yaml:"canonical"`
}

type termEntry struct {
	Index   int           `yaml:"index"`
	Courses []courseEntry `yaml:"courses"`
}

type courseEntry struct {
	Name       string     `yaml:"name"`
	Credits    int        `yaml:"credits"`
	Requisites requisites `yaml:"requisites"`
}

// requisites accepts either a scalar or a sequence of scalars.
type requisites string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *requisites) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*r = ""
			return nil
		}
		*r = requisites(node.Value)
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return err
		}
		*r = requisites(strings.Join(parts, ", "))
		return nil
	default:
		return fmt.Errorf("line %d: requisites must be a string or a list of strings", node.Line)
	}
}

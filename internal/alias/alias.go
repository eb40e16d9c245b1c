// Package alias maps known abbreviations and spelling variants of course
// names to their canonical, normalized form.
package alias

import (
	"sort"

	"github.com/specialistvlad/coursegrid/internal/normalize"
)

// Pair is one static alias entry as it appears in catalog configuration.
type Pair struct {
	Alias     string
	Canonical string
}

// Table is an immutable alias lookup built once at catalog load.
type Table struct {
	entries map[string]string
}

// New builds a Table from pairs, normalizing both sides. Later pairs with the
// same normalized alias replace earlier ones. Pairs that normalize to an empty
// side or map an alias onto itself are ignored.
//
// Chains (a -> b, b -> c) are collapsed so every alias points at a name that
// is not itself an alias. A cycle resolves to its smallest member.
func New(pairs []Pair) *Table {
	raw := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key := normalize.Name(p.Alias)
		target := normalize.Name(p.Canonical)
		if key == "" || target == "" || key == target {
			continue
		}
		raw[key] = target
	}

	t := &Table{entries: make(map[string]string, len(raw))}
	for key := range raw {
		if target := terminal(raw, key); target != key {
			t.entries[key] = target
		}
	}
	return t
}

func terminal(raw map[string]string, key string) string {
	visited := map[string]int{}
	var path []string
	current := key
	for {
		if at, loop := visited[current]; loop {
			cycle := path[at:]
			smallest := cycle[0]
			for _, member := range cycle[1:] {
				if member < smallest {
					smallest = member
				}
			}
			return smallest
		}
		next, ok := raw[current]
		if !ok {
			return current
		}
		visited[current] = len(path)
		path = append(path, current)
		current = next
	}
}

// Resolve returns the canonical name for name. Unknown names are returned
// normalized but otherwise unchanged.
func (t *Table) Resolve(name string) string {
	key := normalize.Name(name)
	if t == nil {
		return key
	}
	if target, ok := t.entries[key]; ok {
		return target
	}
	return key
}

// Lookup reports the canonical target of a normalized alias key.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	target, ok := t.entries[key]
	return target, ok
}

// Keys returns all normalized alias keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

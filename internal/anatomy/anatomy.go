// Package anatomy holds the content table for the model: the ordered surface
// names for the model's meshes and the text shown in the drawer for each
// named structure. The table is data, loaded from a YAML file; the viewer
// core never depends on it.
package anatomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is the drawer text for one structure.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Table maps mesh names to drawer entries. Surfaces labels the model's
// meshes in load order; meshes past the end of the list stay unnamed and the
// UI falls back to a generic label.
type Table struct {
	Surfaces []string         `yaml:"surfaces"`
	Entries  map[string]Entry `yaml:"entries"`
}

// Load reads a content table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("anatomy: %w", err)
	}
	return Parse(data)
}

// Parse decodes a content table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("anatomy: %w", err)
	}
	if t.Entries == nil {
		t.Entries = map[string]Entry{}
	}
	return &t, nil
}

// Lookup returns the entry for a structure name. Unknown names get a stub
// entry titled with the name itself, so every selection shows something.
func (t *Table) Lookup(name string) Entry {
	if e, ok := t.Entries[name]; ok {
		return e
	}
	return Entry{Title: name, Description: "No notes for this structure yet."}
}

// Builtin returns the fallback table used when no content file is
// configured. It matches the placeholder model's surface order.
func Builtin() *Table {
	names := make([]string, 0, placeholderTeeth+1)
	for i := 1; i <= placeholderTeeth; i++ {
		names = append(names, fmt.Sprintf("Tooth %d", i))
	}
	names = append(names, "Gums")
	return &Table{
		Surfaces: names,
		Entries: map[string]Entry{
			"Gums": {
				Title:       "Gums",
				Description: "The gingiva: soft tissue anchoring the teeth to the jaw.",
			},
			"Tooth 1": {
				Title:       "Central incisor",
				Description: "Front cutting tooth; the first of the placeholder arch.",
			},
		},
	}
}

// placeholderTeeth mirrors the tooth count of the procedural placeholder
// model in internal/scene.
const placeholderTeeth = 12

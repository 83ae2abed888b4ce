package tree

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var embeddedStore []byte

// storeFile mirrors the YAML layout of a persisted model store.
type storeFile struct {
	Features []string               `yaml:"features"`
	Trees    map[string][]storeNode `yaml:"trees"`
}

// storeNode is one node in the YAML store. Split nodes reference features by
// name; leaves carry only a label.
type storeNode struct {
	Feature string  `yaml:"feature,omitempty"`
	Cut     float64 `yaml:"cut,omitempty"`
	Left    int     `yaml:"left,omitempty"`
	Right   int     `yaml:"right,omitempty"`
	Label   string  `yaml:"label,omitempty"`
}

// Load parses the model store embedded in the binary.
func Load() (*Model, error) {
	return Parse(embeddedStore)
}

// LoadFile parses a model store from an external YAML file.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tree: read store: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML model store.
func Parse(data []byte) (*Model, error) {
	var sf storeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("tree: decode store: %w", err)
	}

	if len(sf.Features) == 0 {
		return nil, fmt.Errorf("tree: store declares no features")
	}

	index := make(map[string]int, len(sf.Features))
	for i, name := range sf.Features {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("tree: duplicate feature name %q", name)
		}

		index[name] = i
	}

	if len(sf.Trees) == 0 {
		return nil, fmt.Errorf("tree: store contains no trees")
	}

	model := &Model{
		Features: sf.Features,
		Trees:    make(map[string]*Tree, len(sf.Trees)),
	}

	for name, rawNodes := range sf.Trees {
		t := &Tree{Nodes: make([]Node, len(rawNodes))}

		for i, raw := range rawNodes {
			if raw.Feature == "" {
				t.Nodes[i] = Node{Feature: -1, Label: raw.Label}
				continue
			}

			col, ok := index[raw.Feature]
			if !ok {
				return nil, fmt.Errorf("tree: %s node %d references unknown feature %q", name, i, raw.Feature)
			}

			t.Nodes[i] = Node{Feature: col, Cut: raw.Cut, Left: raw.Left, Right: raw.Right}
		}

		if err := t.validate(len(sf.Features)); err != nil {
			return nil, fmt.Errorf("tree: %s: %w", name, err)
		}

		model.Trees[name] = t
	}

	return model, nil
}

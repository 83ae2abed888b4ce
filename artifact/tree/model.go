package tree

import (
	"fmt"
	"math"
	"sort"
)

// Sub-model names available in a store.
const (
	VariantAll = "treeAll"
	VariantPrg = "treePrg"
)

// Leaf labels form a fixed two-letter alphabet: "1" marks an artifact.
const (
	LabelClean    = "0"
	LabelArtifact = "1"
)

// Node is a single decision-tree node. Split nodes carry a feature index
// into the model's feature universe and a cut point; leaves have Feature set
// to -1 and carry a label.
type Node struct {
	Feature int
	Cut     float64
	Left    int
	Right   int
	Label   string
}

// leaf reports whether the node is a terminal label node.
func (n Node) leaf() bool { return n.Feature < 0 }

// Tree is a pre-trained decision tree stored as a node array with the root
// at index 0. Children always have larger indices than their parent.
type Tree struct {
	Nodes []Node
}

// Evaluate traverses the tree for one feature row (indexed by the model's
// feature universe) and returns the leaf label. A sample descends left when
// the split feature value is below the cut point; samples with a missing
// (NaN) value at a split also descend left.
func (t *Tree) Evaluate(row []float64) string {
	i := 0

	for {
		n := t.Nodes[i]
		if n.leaf() {
			return n.Label
		}

		v := row[n.Feature]
		if math.IsNaN(v) || v < n.Cut {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// VariablesUsed returns the sorted set of feature indices the tree branches
// on. Features outside this set never influence an evaluation.
func (t *Tree) VariablesUsed() []int {
	seen := make(map[int]bool)

	for _, n := range t.Nodes {
		if !n.leaf() {
			seen[n.Feature] = true
		}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}

	sort.Ints(out)

	return out
}

// validate checks the structural invariants of the tree against a feature
// universe of the given size.
func (t *Tree) validate(featureCount int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}

	for i, n := range t.Nodes {
		if n.leaf() {
			if n.Label != LabelClean && n.Label != LabelArtifact {
				return fmt.Errorf("node %d: leaf label must be %q or %q: %q", i, LabelClean, LabelArtifact, n.Label)
			}

			continue
		}

		if n.Feature >= featureCount {
			return fmt.Errorf("node %d: feature index out of range: %d", i, n.Feature)
		}

		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child index out of range: %d", i, child)
			}
		}
	}

	return nil
}

// Model bundles the feature-name universe with the named sub-models of a
// store. Models are read-only once loaded.
type Model struct {
	Features []string
	Trees    map[string]*Tree
}

// Tree returns the named sub-model.
func (m *Model) Tree(name string) (*Tree, error) {
	t, ok := m.Trees[name]
	if !ok {
		return nil, fmt.Errorf("model has no tree %q", name)
	}

	return t, nil
}

package tree

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const smallStore = `
features: [rms, variance]
trees:
  treeAll:
    - {feature: rms, cut: 1.5, left: 1, right: 2}
    - {label: "0"}
    - {label: "1"}
`

func TestParseSmallStore(t *testing.T) {
	m, err := Parse([]byte(smallStore))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr, err := m.Tree(VariantAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tr.Evaluate([]float64{1.0, 0}); got != LabelClean {
		t.Fatalf("below cut: got %q, want %q", got, LabelClean)
	}

	if got := tr.Evaluate([]float64{2.0, 0}); got != LabelArtifact {
		t.Fatalf("above cut: got %q, want %q", got, LabelArtifact)
	}
}

func TestParseRejectsMalformedStores(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not yaml", "{features"},
		{"no features", "trees:\n  treeAll:\n    - {label: \"0\"}\n"},
		{"no trees", "features: [rms]\n"},
		{"duplicate feature", "features: [rms, rms]\ntrees:\n  treeAll:\n    - {label: \"0\"}\n"},
		{"unknown feature", `
features: [rms]
trees:
  treeAll:
    - {feature: variance, cut: 1, left: 1, right: 2}
    - {label: "0"}
    - {label: "1"}
`},
		{"bad label", "features: [rms]\ntrees:\n  treeAll:\n    - {label: \"artifact\"}\n"},
		{"child out of range", `
features: [rms]
trees:
  treeAll:
    - {feature: rms, cut: 1, left: 1, right: 7}
    - {label: "0"}
    - {label: "1"}
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Fatalf("malformed store accepted")
			}
		})
	}
}

func TestLoadEmbeddedStore(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Features) != 19 {
		t.Fatalf("feature universe size: got %d, want 19", len(m.Features))
	}

	for _, variant := range []string{VariantAll, VariantPrg} {
		tr, err := m.Tree(variant)
		if err != nil {
			t.Fatalf("%s: %v", variant, err)
		}

		used := tr.VariablesUsed()
		if len(used) == 0 {
			t.Fatalf("%s: no split features", variant)
		}

		for _, idx := range used {
			if idx < 0 || idx >= len(m.Features) {
				t.Fatalf("%s: feature index %d outside universe", variant, idx)
			}
		}

		// An all-missing row must still reach a leaf via the left spine.
		row := make([]float64, len(m.Features))
		for i := range row {
			row[i] = math.NaN()
		}

		if got := tr.Evaluate(row); got != LabelClean && got != LabelArtifact {
			t.Fatalf("%s: unexpected label %q", variant, got)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	if err := os.WriteFile(path, []byte(smallStore), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Tree(VariantAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

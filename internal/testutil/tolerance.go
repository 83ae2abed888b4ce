package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireGridEqual fails t if the two boolean grids differ in shape or in
// any cell.
func RequireGridEqual(t *testing.T, got, want [][]bool) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("channel count mismatch: got %d, want %d", len(got), len(want))
	}

	for ch := range got {
		if len(got[ch]) != len(want[ch]) {
			t.Fatalf("channel %d: second count mismatch: got %d, want %d", ch, len(got[ch]), len(want[ch]))
		}

		for s := range got[ch] {
			if got[ch][s] != want[ch][s] {
				t.Fatalf("channel %d second %d: got %v, want %v", ch, s, got[ch][s], want[ch][s])
			}
		}
	}
}

// RequireBoolsEqual fails t if the two boolean slices differ.
func RequireBoolsEqual(t *testing.T, got, want []bool) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

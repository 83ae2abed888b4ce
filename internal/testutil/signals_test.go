package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSineIsReproducible(t *testing.T) {
	a := DeterministicSine(50, 1000, 1.0, 256)
	b := DeterministicSine(50, 1000, 1.0, 256)

	RequireSliceNearlyEqual(t, a, b, 0)

	if a[0] != 0 {
		t.Fatalf("sine must start at zero, got %v", a[0])
	}
}

func TestDeterministicNoiseSeed(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 128)
	b := DeterministicNoise(42, 1.0, 128)
	c := DeterministicNoise(43, 1.0, 128)

	RequireSliceNearlyEqual(t, a, b, 0)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}

	if same {
		t.Fatalf("different seeds produced identical noise")
	}

	for i, v := range a {
		if math.Abs(v) > 1 {
			t.Fatalf("index %d: amplitude bound exceeded: %v", i, v)
		}
	}
}

func TestWithBurstScalesOnlyRange(t *testing.T) {
	base := DC(1.0, 10)
	got := WithBurst(base, 3, 6, 5.0)

	for i, v := range got {
		want := 1.0
		if i >= 3 && i < 6 {
			want = 5.0
		}

		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}

	if base[3] != 1.0 {
		t.Fatalf("WithBurst mutated its input")
	}
}

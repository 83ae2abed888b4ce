package covtest

import (
	"testing"

	"github.com/cwbudde/algo-artifact/internal/testutil"
)

func TestConstantChannelIsClean(t *testing.T) {
	out, err := Classify(testutil.DC(1.0, 400), 100, 1.2, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireBoolsEqual(t, out, []bool{false, false, false, false})
}

func TestBurstSecondIsFlagged(t *testing.T) {
	// A 4 Hz sine at 100 Hz holds exactly one cycle per 25-sample window, so
	// every window carries identical baseline variance. The tenfold burst in
	// second 2 lifts its four windows a hundredfold above the median.
	channel := testutil.WithBurst(testutil.DeterministicSine(4, 100, 1.0, 400), 200, 300, 10)

	out, err := Classify(channel, 100, 1.2, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireBoolsEqual(t, out, []bool{false, false, true, false})
}

func TestAggregationControlsSecondLabel(t *testing.T) {
	// The burst covers one of the four windows of second 2.
	channel := testutil.WithBurst(testutil.DeterministicSine(4, 100, 1.0, 400), 200, 225, 10)

	loose, err := Classify(channel, 100, 1.2, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireBoolsEqual(t, loose, []bool{false, false, true, false})

	strict, err := Classify(channel, 100, 1.2, 0.25, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireBoolsEqual(t, strict, []bool{false, false, false, false})
}

func TestZeroBaselineFlagsAnyVariance(t *testing.T) {
	// All windows but one are perfectly flat; the median baseline is zero and
	// the single window carrying variance must still be flagged.
	channel := make([]float64, 200)
	channel[110] = 5

	out, err := Classify(channel, 100, 1.2, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireBoolsEqual(t, out, []bool{false, true})
}

func TestOutputCoversPartialFinalSecond(t *testing.T) {
	out, err := Classify(testutil.DeterministicNoise(1, 1.0, 250), 100, 1.2, 0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("output length: got %d, want 3", len(out))
	}
}

func TestClassifyRejectsInvalidParameters(t *testing.T) {
	channel := testutil.DC(1.0, 200)

	cases := []struct {
		name                                       string
		sampleRate, threshold, window, aggregation float64
	}{
		{"zero sample rate", 0, 1.2, 0.25, 0.25},
		{"threshold below one", 100, 0.9, 0.25, 0.25},
		{"window zero", 100, 1.2, 0, 0.25},
		{"window one", 100, 1.2, 1, 0.25},
		{"aggregation zero", 100, 1.2, 0.25, 0},
		{"aggregation above one", 100, 1.2, 0.25, 1.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Classify(channel, tc.sampleRate, tc.threshold, tc.window, tc.aggregation); err == nil {
				t.Fatalf("invalid parameters accepted")
			}
		})
	}

	if _, err := Classify(nil, 100, 1.2, 0.25, 0.25); err == nil {
		t.Fatalf("empty channel accepted")
	}
}

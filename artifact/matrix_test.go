package artifact

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-artifact/artifact/features"
	"github.com/cwbudde/algo-artifact/internal/testutil"
)

func TestSecondsCount(t *testing.T) {
	cases := []struct {
		n    int
		rate float64
		want int
	}{
		{100, 100, 1},
		{101, 100, 2},
		{250, 100, 3},
		{300, 100, 3},
	}

	for _, tc := range cases {
		if got := secondsCount(tc.n, tc.rate); got != tc.want {
			t.Fatalf("secondsCount(%d, %g): got %d, want %d", tc.n, tc.rate, got, tc.want)
		}
	}
}

func TestSecondBoundsFinalWindowIsShorter(t *testing.T) {
	// 10 samples at 4 Hz: windows [0,4), [4,8), [8,10).
	bounds := [][2]int{{0, 4}, {4, 8}, {8, 10}}

	for s, want := range bounds {
		lo, hi := secondBounds(s, 4, 10)
		if lo != want[0] || hi != want[1] {
			t.Fatalf("second %d: got [%d, %d), want [%d, %d)", s, lo, hi, want[0], want[1])
		}
	}
}

func TestBuildFeatureTableSegmentsAndColumns(t *testing.T) {
	signal := testutil.MultiChannel(
		testutil.DC(1.0, 10),
		testutil.DC(2.0, 10),
	)

	rc, err := resolve(ApplyOptions(WithMethod(MethodPSD)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var segmentLengths []int

	extract := func(segment [][]float64, names []string, sampleRate float64) ([][]float64, error) {
		segmentLengths = append(segmentLengths, len(segment[0]))

		rows := make([][]float64, len(segment))
		for ch := range segment {
			rows[ch] = make([]float64, len(names))
			rows[ch][0] = segment[ch][0]
		}

		return rows, nil
	}

	table, err := buildFeatureTable(signal, 4, rc, extract, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segmentLengths) != 3 || segmentLengths[0] != 4 || segmentLengths[1] != 4 || segmentLengths[2] != 2 {
		t.Fatalf("segment lengths: got %v, want [4 4 2]", segmentLengths)
	}

	peak := features.Index(features.NormPSDMax)

	for s := 0; s < 3; s++ {
		for ch := 0; ch < 2; ch++ {
			got := table.At(tableRow(s, ch, 2), peak)
			want := float64(ch + 1)

			if got != want {
				t.Fatalf("row (%d, %d): got %v, want %v", s, ch, got, want)
			}
		}
	}

	// Columns the method never requested stay NaN.
	other := features.Index(features.RMS)
	if !math.IsNaN(table.At(0, other)) {
		t.Fatalf("unrequested column %d was written: %v", other, table.At(0, other))
	}
}

func TestTableRowMapping(t *testing.T) {
	// Rows group by second first, channel second.
	if got := tableRow(0, 0, 3); got != 0 {
		t.Fatalf("tableRow(0,0,3): got %d, want 0", got)
	}

	if got := tableRow(0, 2, 3); got != 2 {
		t.Fatalf("tableRow(0,2,3): got %d, want 2", got)
	}

	if got := tableRow(2, 1, 3); got != 7 {
		t.Fatalf("tableRow(2,1,3): got %d, want 7", got)
	}
}

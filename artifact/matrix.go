package artifact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is the boolean annotation output: one row per channel, one column per
// second, true marking an artifact-labeled second.
type Grid [][]bool

// Channels returns the number of channel rows.
func (g Grid) Channels() int { return len(g) }

// Seconds returns the number of annotated seconds.
func (g Grid) Seconds() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

func newGrid(channels, seconds int) Grid {
	g := make(Grid, channels)
	for ch := range g {
		g[ch] = make([]bool, seconds)
	}

	return g
}

// secondsCount returns ceil(n / sampleRate): the number of one-second
// windows, the last possibly shorter.
func secondsCount(n int, sampleRate float64) int {
	return int(math.Ceil(float64(n) / sampleRate))
}

// secondBounds returns the half-open sample range of second s.
func secondBounds(s int, sampleRate float64, n int) (lo, hi int) {
	lo = int(float64(s) * sampleRate)

	hi = int(float64(s+1) * sampleRate)
	if hi > n {
		hi = n
	}

	return lo, hi
}

// tableRow maps a (second, channel) pair onto the feature-table row index:
// rows group by second first, channel second.
func tableRow(second, channel, channels int) int {
	return second*channels + channel
}

// buildFeatureTable computes the per-second, per-channel feature table for
// the resolved method. Only the configured columns are filled; every other
// cell stays NaN and must never be read by a decision procedure. Windows are
// processed independently, with no cross-window state.
func buildFeatureTable(signal [][]float64, sampleRate float64, rc resolved, extract FeatureFunc, seconds int) (*mat.Dense, error) {
	channels := len(signal)
	n := len(signal[0])

	data := make([]float64, channels*seconds*len(rc.universe))
	for i := range data {
		data[i] = math.NaN()
	}

	table := mat.NewDense(channels*seconds, len(rc.universe), data)
	names := rc.names()

	for s := 0; s < seconds; s++ {
		lo, hi := secondBounds(s, sampleRate, n)

		segment := make([][]float64, channels)
		for ch := range signal {
			segment[ch] = signal[ch][lo:hi]
		}

		rows, err := extract(segment, names, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("artifact: feature extraction for second %d: %w", s, err)
		}

		if len(rows) != channels {
			return nil, fmt.Errorf("artifact: feature extractor returned %d rows, want %d", len(rows), channels)
		}

		for ch, row := range rows {
			if len(row) != len(names) {
				return nil, fmt.Errorf("artifact: feature extractor returned %d values, want %d", len(row), len(names))
			}

			r := tableRow(s, ch, channels)
			for j, col := range rc.columns {
				table.Set(r, col, row[j])
			}
		}
	}

	return table, nil
}

package artifact

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-artifact/artifact/tree"
)

// Classify labels each one-second segment of the signal as artifact or
// clean. signal holds one sample slice per channel; all channels must have
// the same length. The result grid has one row per channel and
// ceil(samples/sampleRate) columns.
//
// An empty signal returns an empty grid without error. Any configuration
// failure aborts before feature computation starts; no partial grid is ever
// returned. The computation is deterministic: identical inputs yield
// bit-identical grids.
func Classify(signal [][]float64, sampleRate float64, opts ...Option) (Grid, error) {
	cfg := ApplyOptions(opts...)

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrMissingSampleRate, sampleRate)
	}

	if len(signal) == 0 || len(signal[0]) == 0 {
		return Grid{}, nil
	}

	n := len(signal[0])
	for ch, row := range signal {
		if len(row) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidParameter, ch, len(row), n)
		}
	}

	if float64(n) < sampleRate {
		return nil, fmt.Errorf("%w: %d samples at %g Hz", ErrInsufficientLength, n, sampleRate)
	}

	rc, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	seconds := secondsCount(n, sampleRate)

	if rc.method == MethodCov {
		return classifyCov(signal, sampleRate, rc.cov, cfg.Cov, seconds)
	}

	table, err := buildFeatureTable(signal, sampleRate, rc, cfg.Features, seconds)
	if err != nil {
		return nil, err
	}

	channels := len(signal)

	switch rc.method {
	case MethodPSD, MethodPSDPrg:
		return classifyPSD(table, rc.columns[0], rc.psd.Threshold, channels, seconds), nil
	default:
		return classifyTree(table, rc.tree.Tree, channels, seconds), nil
	}
}

// classifyPSD thresholds the single required feature column. The comparison
// is strict: a value exactly at the threshold is clean.
func classifyPSD(table *mat.Dense, column int, threshold float64, channels, seconds int) Grid {
	out := newGrid(channels, seconds)

	for s := 0; s < seconds; s++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][s] = table.At(tableRow(s, ch, channels), column) > threshold
		}
	}

	return out
}

// classifyTree evaluates the pre-trained tree once per table row. Columns
// the tree never branches on stay NaN and are never read on any path that
// the configurator scheduled.
func classifyTree(table *mat.Dense, t *tree.Tree, channels, seconds int) Grid {
	out := newGrid(channels, seconds)
	row := make([]float64, table.RawMatrix().Cols)

	for s := 0; s < seconds; s++ {
		for ch := 0; ch < channels; ch++ {
			mat.Row(row, tableRow(s, ch, channels), table)
			out[ch][s] = t.Evaluate(row) == tree.LabelArtifact
		}
	}

	return out
}

// classifyCov delegates to the covariance tester once per channel and
// collects the per-second rows into the grid.
func classifyCov(signal [][]float64, sampleRate float64, cc CovConfig, covFn CovFunc, seconds int) (Grid, error) {
	out := newGrid(len(signal), seconds)

	for ch, channel := range signal {
		row, err := covFn(channel, sampleRate, cc.Threshold, cc.WindowLength, cc.Aggregation)
		if err != nil {
			return nil, fmt.Errorf("artifact: covariance test on channel %d: %w", ch, err)
		}

		if len(row) != seconds {
			return nil, fmt.Errorf("artifact: covariance test returned %d seconds, want %d", len(row), seconds)
		}

		copy(out[ch], row)
	}

	return out, nil
}

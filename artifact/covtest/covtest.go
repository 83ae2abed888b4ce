package covtest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Classify runs the sliding-window covariance-ratio test over one channel.
//
// The channel is split into consecutive windows of round(windowLength *
// sampleRate) samples (the final window may be shorter). A window is flagged
// when its variance reaches threshold times the channel's median window
// variance; with a zero baseline any window carrying variance at all is
// flagged. Each second is then labeled an artifact when the flagged fraction
// among the windows overlapping it is at least aggregation.
//
// The result holds one entry per second, ceil(len(channel)/sampleRate)
// entries in total.
func Classify(channel []float64, sampleRate, threshold, windowLength, aggregation float64) ([]bool, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("covtest: sample rate must be > 0: %g", sampleRate)
	}

	if threshold < 1 {
		return nil, fmt.Errorf("covtest: threshold must be >= 1: %g", threshold)
	}

	if windowLength <= 0 || windowLength >= 1 {
		return nil, fmt.Errorf("covtest: window length must be in (0,1): %g", windowLength)
	}

	if aggregation <= 0 || aggregation > 1 {
		return nil, fmt.Errorf("covtest: aggregation fraction must be in (0,1]: %g", aggregation)
	}

	n := len(channel)
	if n == 0 {
		return nil, fmt.Errorf("covtest: channel must not be empty")
	}

	w := int(math.Round(windowLength * sampleRate))
	if w < 1 {
		w = 1
	}

	windowCount := (n + w - 1) / w
	variances := make([]float64, windowCount)

	for i := range variances {
		lo := i * w

		hi := lo + w
		if hi > n {
			hi = n
		}

		if hi-lo > 1 {
			variances[i] = stat.Variance(channel[lo:hi], nil)
		}
	}

	sorted := make([]float64, windowCount)
	copy(sorted, variances)
	sort.Float64s(sorted)
	baseline := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	flagged := make([]bool, windowCount)
	for i, v := range variances {
		if baseline > 0 {
			flagged[i] = v >= threshold*baseline
		} else {
			flagged[i] = v > 0
		}
	}

	seconds := int(math.Ceil(float64(n) / sampleRate))
	out := make([]bool, seconds)

	for s := range out {
		lo := int(float64(s) * sampleRate)

		hi := int(float64(s+1) * sampleRate)
		if hi > n {
			hi = n
		}

		total := 0
		hits := 0

		for i := range flagged {
			wLo := i * w

			wHi := wLo + w
			if wHi > n {
				wHi = n
			}

			if wLo < hi && lo < wHi {
				total++

				if flagged[i] {
					hits++
				}
			}
		}

		if total > 0 {
			out[s] = float64(hits)/float64(total) >= aggregation
		}
	}

	return out, nil
}

package features

import "math"

// timeStats holds the time-domain feature values of a single window.
type timeStats struct {
	rms           float64
	variance      float64
	skewness      float64
	kurtosis      float64
	zeroCrossRate float64
	lineLength    float64
	peakToPeak    float64
	crestFactor   float64
	mobility      float64
	complexity    float64
}

// calcTimeStats computes all time-domain features in a single pass using
// Welford's online algorithm for the higher-order moments. Variances of the
// first and second differences are accumulated alongside for the Hjorth
// parameters.
func calcTimeStats(samples []float64) timeStats {
	n := len(samples)
	if n == 0 {
		return timeStats{}
	}

	// Welford accumulators for the raw samples.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	// Running aggregates.
	var (
		sumSq         float64
		maxVal        = samples[0]
		minVal        = samples[0]
		zeroCrossings int
		lineLen       float64
	)

	// Mean/sum-of-squares accumulators for first and second differences.
	var (
		dSum, dSumSq   float64
		ddSum, ddSumSq float64
		prev, prevDiff float64
	)

	for i, x := range samples {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}

		if x < minVal {
			minVal = x
		}

		if i > 0 {
			if samples[i-1]*x < 0 {
				zeroCrossings++
			}

			diff := x - prev
			lineLen += math.Abs(diff)
			dSum += diff
			dSumSq += diff * diff

			if i > 1 {
				dd := diff - prevDiff
				ddSum += dd
				ddSumSq += dd * dd
			}

			prevDiff = diff
		}

		prev = x
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	var zcr float64
	if n > 1 {
		zcr = float64(zeroCrossings) / float64(n-1)
	}

	varDiff := populationVariance(dSum, dSumSq, n-1)
	varDiff2 := populationVariance(ddSum, ddSumSq, n-2)

	var mobility, complexity float64
	if variance > 0 && varDiff > 0 {
		mobility = math.Sqrt(varDiff / variance)
		if varDiff2 > 0 {
			complexity = math.Sqrt(varDiff2/varDiff) / mobility
		}
	}

	return timeStats{
		rms:           rms,
		variance:      variance,
		skewness:      skewness,
		kurtosis:      kurtosis,
		zeroCrossRate: zcr,
		lineLength:    lineLen,
		peakToPeak:    maxVal - minVal,
		crestFactor:   crest,
		mobility:      mobility,
		complexity:    complexity,
	}
}

// populationVariance computes sumSq/n - (sum/n)^2, clamped at zero to guard
// against cancellation.
func populationVariance(sum, sumSq float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	nf := float64(n)
	m := sum / nf

	v := sumSq/nf - m*m
	if v < 0 {
		return 0
	}

	return v
}

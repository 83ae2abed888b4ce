package features

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	powerLineHz     = 50.0
	powerLineHalfHz = 5.0
	lowBandUpperHz  = 500.0
	highBandLowerHz = 3000.0

	rolloffFraction = 0.85
)

// spectralStats holds the frequency-domain feature values of a single window.
// All descriptors derive from the one-sided, Hann-windowed periodogram
// normalized to unit total power.
type spectralStats struct {
	normMax        float64
	centroid       float64
	spread         float64
	flatness       float64
	rolloff        float64
	entropy        float64
	powerLineRatio float64
	lowBandRatio   float64
	highBandRatio  float64
}

// calcSpectralStats computes the normalized periodogram of the window and
// derives all spectral descriptors from it. Windows shorter than two samples
// have no usable spectrum and yield all-zero descriptors.
func calcSpectralStats(samples []float64, sampleRate float64) (spectralStats, error) {
	psd, err := normalizedPSD(samples)
	if err != nil {
		return spectralStats{}, err
	}

	if len(psd) < 2 {
		return spectralStats{}, nil
	}

	fftSize := 2 * (len(psd) - 1)
	binHz := sampleRate / float64(fftSize)

	var s spectralStats

	// Peak normalized PSD value, DC bin excluded.
	for i := 1; i < len(psd); i++ {
		if psd[i] > s.normMax {
			s.normMax = psd[i]
		}
	}

	s.centroid = psdCentroid(psd, binHz)
	s.spread = psdSpread(psd, binHz, s.centroid)
	s.flatness = psdFlatness(psd)
	s.rolloff = psdRolloff(psd, binHz, rolloffFraction)
	s.entropy = psdEntropy(psd)
	s.powerLineRatio = bandFraction(psd, binHz, powerLineHz-powerLineHalfHz, powerLineHz+powerLineHalfHz) +
		bandFraction(psd, binHz, 2*powerLineHz-powerLineHalfHz, 2*powerLineHz+powerLineHalfHz)
	s.lowBandRatio = bandFraction(psd, binHz, 0, lowBandUpperHz)
	s.highBandRatio = bandFraction(psd, binHz, highBandLowerHz, sampleRate/2)

	return s, nil
}

// normalizedPSD returns the one-sided power spectrum of the Hann-windowed
// samples, scaled so the bins sum to one. An all-zero window yields an
// all-zero spectrum. Windows shorter than two samples return nil.
func normalizedPSD(samples []float64) ([]float64, error) {
	n := len(samples)
	if n < 2 {
		return nil, nil
	}

	fftSize := nextPowerOf2(n)

	inData := make([]complex128, fftSize)
	for i, x := range samples {
		inData[i] = complex(x*hann(i, n), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("features: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("features: fft forward: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	psd := make([]float64, binCount)
	vecmath.Power(psd, re, im)

	total := 0.0
	for _, v := range psd {
		total += v
	}

	if total > 0 {
		inv := 1 / total
		for i := range psd {
			psd[i] *= inv
		}
	}

	return psd, nil
}

func hann(i, n int) float64 {
	if n < 2 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// psdCentroid returns the power-weighted mean frequency in Hz.
func psdCentroid(psd []float64, binHz float64) float64 {
	sum := 0.0
	weighted := 0.0

	for i, v := range psd {
		sum += v
		weighted += float64(i) * binHz * v
	}

	if sum == 0 {
		return 0
	}

	return weighted / sum
}

// psdSpread returns the power-weighted standard deviation around the
// centroid in Hz.
func psdSpread(psd []float64, binHz, centroid float64) float64 {
	sum := 0.0
	weighted := 0.0

	for i, v := range psd {
		diff := float64(i)*binHz - centroid
		sum += v
		weighted += diff * diff * v
	}

	if sum == 0 {
		return 0
	}

	return math.Sqrt(weighted / sum)
}

// psdFlatness returns the Wiener entropy (geometric over arithmetic mean) of
// the spectrum, DC bin excluded, in the range 0..1.
func psdFlatness(psd []float64) float64 {
	n := len(psd)
	if n < 2 {
		return 0
	}

	bins := n - 1
	sumLin := 0.0
	sumLog := 0.0

	for i := 1; i < n; i++ {
		v := psd[i]
		if v <= 0 {
			// A zero bin makes the geometric mean zero.
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	meanLin := sumLin / float64(bins)
	if meanLin == 0 {
		return 0
	}

	return math.Exp(sumLog/float64(bins)) / meanLin
}

// psdRolloff returns the frequency in Hz below which the given fraction of
// total power lies.
func psdRolloff(psd []float64, binHz, fraction float64) float64 {
	total := 0.0
	for _, v := range psd {
		total += v
	}

	if total == 0 {
		return 0
	}

	threshold := fraction * total
	cum := 0.0

	for i, v := range psd {
		cum += v
		if cum >= threshold {
			return float64(i) * binHz
		}
	}

	return float64(len(psd)-1) * binHz
}

// psdEntropy returns the normalized Shannon entropy of the spectrum, DC bin
// excluded, in the range 0..1.
func psdEntropy(psd []float64) float64 {
	n := len(psd)
	if n < 3 {
		return 0
	}

	total := 0.0
	for i := 1; i < n; i++ {
		total += psd[i]
	}

	if total == 0 {
		return 0
	}

	h := 0.0

	for i := 1; i < n; i++ {
		p := psd[i] / total
		if p > 0 {
			h -= p * math.Log(p)
		}
	}

	return h / math.Log(float64(n-1))
}

// bandFraction returns the fraction of total power within [loHz, hiHz].
func bandFraction(psd []float64, binHz, loHz, hiHz float64) float64 {
	if binHz <= 0 || hiHz < loHz {
		return 0
	}

	total := 0.0
	for _, v := range psd {
		total += v
	}

	if total == 0 {
		return 0
	}

	lo := int(math.Ceil(loHz / binHz))
	hi := int(math.Floor(hiHz / binHz))

	if lo < 0 {
		lo = 0
	}

	if hi > len(psd)-1 {
		hi = len(psd) - 1
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += psd[i]
	}

	return sum / total
}

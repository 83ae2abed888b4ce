package features

import (
	"fmt"
	"math"
)

// Feature names of the fixed universe. Column order in downstream feature
// tables follows the order of [Names].
const (
	RMS              = "rms"
	Variance         = "variance"
	Skewness         = "skewness"
	Kurtosis         = "kurtosis"
	ZeroCrossRate    = "zeroCrossRate"
	LineLength       = "lineLength"
	PeakToPeak       = "peakToPeak"
	CrestFactor      = "crestFactor"
	HjorthMobility   = "hjorthMobility"
	HjorthComplexity = "hjorthComplexity"
	NormPSDMax       = "normPSDMax"
	SpectralCentroid = "spectralCentroid"
	SpectralSpread   = "spectralSpread"
	SpectralFlatness = "spectralFlatness"
	SpectralRolloff  = "spectralRolloff"
	SpectralEntropy  = "spectralEntropy"
	PowerLineRatio   = "powerLineRatio"
	LowBandRatio     = "lowBandRatio"
	HighBandRatio    = "highBandRatio"
)

// universe lists all feature names in canonical column order.
var universe = []string{
	RMS, Variance, Skewness, Kurtosis, ZeroCrossRate,
	LineLength, PeakToPeak, CrestFactor, HjorthMobility, HjorthComplexity,
	NormPSDMax, SpectralCentroid, SpectralSpread, SpectralFlatness,
	SpectralRolloff, SpectralEntropy, PowerLineRatio, LowBandRatio,
	HighBandRatio,
}

// timeDomain marks the features computed from the raw samples; the remaining
// universe entries derive from the normalized power spectrum.
var timeDomain = map[string]bool{
	RMS: true, Variance: true, Skewness: true, Kurtosis: true,
	ZeroCrossRate: true, LineLength: true, PeakToPeak: true,
	CrestFactor: true, HjorthMobility: true, HjorthComplexity: true,
}

// Names returns a copy of the fixed feature-name universe in column order.
func Names() []string {
	out := make([]string, len(universe))
	copy(out, universe)

	return out
}

// Index returns the universe column index of the named feature, or -1 if the
// name is unknown.
func Index(name string) int {
	for i, n := range universe {
		if n == name {
			return i
		}
	}

	return -1
}

// Compute extracts the named features from a one-second (or shorter final)
// window across all channels. segment holds one sample slice per channel;
// all channels must have the same length. The result has one row per channel
// with the feature values in request order.
//
// Only the passes needed by the requested names run: a request containing
// exclusively time-domain names never touches the FFT, and vice versa.
func Compute(segment [][]float64, names []string, sampleRate float64) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("features: sample rate must be > 0: %g", sampleRate)
	}

	if len(segment) == 0 {
		return nil, fmt.Errorf("features: segment must have at least one channel")
	}

	n := len(segment[0])
	if n == 0 {
		return nil, fmt.Errorf("features: segment must not be empty")
	}

	needTime := false
	needFreq := false

	for _, name := range names {
		if Index(name) < 0 {
			return nil, fmt.Errorf("features: unknown feature %q", name)
		}

		if timeDomain[name] {
			needTime = true
		} else {
			needFreq = true
		}
	}

	rows := make([][]float64, len(segment))

	for ch, samples := range segment {
		if len(samples) != n {
			return nil, fmt.Errorf("features: channel %d has %d samples, want %d", ch, len(samples), n)
		}

		var (
			ts  timeStats
			ss  spectralStats
			err error
		)

		if needTime {
			ts = calcTimeStats(samples)
		}

		if needFreq {
			ss, err = calcSpectralStats(samples, sampleRate)
			if err != nil {
				return nil, err
			}
		}

		row := make([]float64, len(names))
		for j, name := range names {
			row[j] = featureValue(name, ts, ss)
		}

		rows[ch] = row
	}

	return rows, nil
}

func featureValue(name string, ts timeStats, ss spectralStats) float64 {
	switch name {
	case RMS:
		return ts.rms
	case Variance:
		return ts.variance
	case Skewness:
		return ts.skewness
	case Kurtosis:
		return ts.kurtosis
	case ZeroCrossRate:
		return ts.zeroCrossRate
	case LineLength:
		return ts.lineLength
	case PeakToPeak:
		return ts.peakToPeak
	case CrestFactor:
		return ts.crestFactor
	case HjorthMobility:
		return ts.mobility
	case HjorthComplexity:
		return ts.complexity
	case NormPSDMax:
		return ss.normMax
	case SpectralCentroid:
		return ss.centroid
	case SpectralSpread:
		return ss.spread
	case SpectralFlatness:
		return ss.flatness
	case SpectralRolloff:
		return ss.rolloff
	case SpectralEntropy:
		return ss.entropy
	case PowerLineRatio:
		return ss.powerLineRatio
	case LowBandRatio:
		return ss.lowBandRatio
	case HighBandRatio:
		return ss.highBandRatio
	default:
		return math.NaN()
	}
}

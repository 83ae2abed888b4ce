package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// WithBurst returns a copy of the signal with samples [from, to) scaled by
// gain, emulating a transient artifact.
func WithBurst(signal []float64, from, to int, gain float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	for i := from; i < to && i < len(out); i++ {
		out[i] *= gain
	}

	return out
}

// MultiChannel stacks per-channel sample slices into a signal matrix.
func MultiChannel(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	copy(out, channels)

	return out
}

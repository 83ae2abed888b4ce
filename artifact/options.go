package artifact

import (
	"math"

	"github.com/cwbudde/algo-artifact/artifact/covtest"
	"github.com/cwbudde/algo-artifact/artifact/features"
	"github.com/cwbudde/algo-artifact/artifact/tree"
)

// FeatureFunc extracts the named features from a one-second window across
// all channels, returning one row per channel in request order.
type FeatureFunc func(segment [][]float64, names []string, sampleRate float64) ([][]float64, error)

// CovFunc runs the per-channel covariance-ratio test and returns one boolean
// per second of the channel.
type CovFunc func(channel []float64, sampleRate, threshold, windowLength, aggregation float64) ([]bool, error)

// ModelLoader resolves the persisted decision-tree model store.
type ModelLoader func() (*tree.Model, error)

// Config defines a classification run. Threshold, WindowLength, and
// Aggregation are NaN while no override has been supplied; their meaning
// depends on the selected method, and options that do not apply to the
// method are ignored.
type Config struct {
	Method       Method
	Threshold    float64
	WindowLength float64
	Aggregation  float64

	Advisory  func(msg string)
	Features  FeatureFunc
	Cov       CovFunc
	LoadModel ModelLoader
}

func (c Config) advise(msg string) {
	if c.Advisory != nil {
		c.Advisory(msg)
	}
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the PSD threshold strategy wired to the built-in
// feature extractor, covariance tester, and embedded model store.
func DefaultConfig() Config {
	return Config{
		Method:       MethodPSD,
		Threshold:    math.NaN(),
		WindowLength: math.NaN(),
		Aggregation:  math.NaN(),
		Features:     features.Compute,
		Cov:          covtest.Classify,
		LoadModel:    tree.Load,
	}
}

// WithMethod selects the classification strategy.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithThreshold overrides the decision threshold. For the PSD methods values
// outside [0, 0.03] trigger a non-fatal advisory; for the cov method values
// below 1 reject the call.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		cfg.Threshold = threshold
	}
}

// WithWindowLength overrides the cov-method window length in seconds; it
// must lie in (0,1).
func WithWindowLength(seconds float64) Option {
	return func(cfg *Config) {
		cfg.WindowLength = seconds
	}
}

// WithAggregation overrides the cov-method per-second aggregation fraction;
// it must lie in (0,1] and defaults to the resolved window length.
func WithAggregation(fraction float64) Option {
	return func(cfg *Config) {
		cfg.Aggregation = fraction
	}
}

// WithAdvisoryHandler installs a sink for non-fatal configuration warnings.
func WithAdvisoryHandler(fn func(msg string)) Option {
	return func(cfg *Config) {
		cfg.Advisory = fn
	}
}

// WithFeatureFunc replaces the feature extractor.
func WithFeatureFunc(fn FeatureFunc) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.Features = fn
		}
	}
}

// WithCovFunc replaces the per-channel covariance tester.
func WithCovFunc(fn CovFunc) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.Cov = fn
		}
	}
}

// WithModelLoader replaces the decision-tree model store.
func WithModelLoader(fn ModelLoader) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.LoadModel = fn
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

package artifact

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-artifact/artifact/features"
	"github.com/cwbudde/algo-artifact/artifact/tree"
)

// Method identifies a classification strategy.
type Method int

const (
	// MethodPSD thresholds the peak normalized PSD value with a constant
	// trained on the multi-center recording set.
	MethodPSD Method = iota

	// MethodPSDPrg is the PSD strategy with the single-center constant.
	MethodPSDPrg

	// MethodTree evaluates the pre-trained treeAll decision tree over the
	// 19-feature vector.
	MethodTree

	// MethodTreePrg evaluates the single-center treePrg decision tree.
	MethodTreePrg

	// MethodCov runs a sliding-window covariance-ratio test directly on the
	// raw samples of each channel.
	MethodCov
)

// ParseMethod resolves a method name. Valid names are "psd", "psdPrg",
// "tree", "treePrg", and "cov".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "psd":
		return MethodPSD, nil
	case "psdPrg":
		return MethodPSDPrg, nil
	case "tree":
		return MethodTree, nil
	case "treePrg":
		return MethodTreePrg, nil
	case "cov":
		return MethodCov, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodPSD:
		return "psd"
	case MethodPSDPrg:
		return "psdPrg"
	case MethodTree:
		return "tree"
	case MethodTreePrg:
		return "treePrg"
	case MethodCov:
		return "cov"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

const (
	// Pre-trained PSD thresholds.
	defaultPSDThreshold    = 0.01
	defaultPSDPrgThreshold = 0.0085

	// Advisory range for user-supplied PSD thresholds. Values outside it
	// are still honored.
	psdAdvisoryLower = 0.0
	psdAdvisoryUpper = 0.03

	// Covariance-test defaults. The aggregation fraction defaults to the
	// resolved window length.
	defaultCovThreshold = 1.2
	defaultCovWindow    = 0.25
)

// PSDConfig holds the resolved parameters of the PSD threshold strategies.
type PSDConfig struct {
	Threshold float64
}

// TreeConfig holds the resolved parameters of the decision-tree strategies.
type TreeConfig struct {
	Variant string
	Tree    *tree.Tree
}

// CovConfig holds the resolved parameters of the covariance-ratio strategy.
type CovConfig struct {
	Threshold    float64
	WindowLength float64
	Aggregation  float64
}

// resolved is the outcome of method configuration: the variant tag, its
// parameter struct, and the feature columns the matrix builder must fill.
type resolved struct {
	method Method
	psd    PSDConfig
	tree   TreeConfig
	cov    CovConfig

	// Feature universe (table column naming) and the subset of columns the
	// selected method actually reads. Empty for the cov method, which never
	// builds a feature table.
	universe []string
	columns  []int
}

// names returns the required feature names in column order.
func (r resolved) names() []string {
	out := make([]string, len(r.columns))
	for i, col := range r.columns {
		out[i] = r.universe[col]
	}

	return out
}

// resolve turns the applied configuration into a validated per-method
// parameter set. PSD-family threshold overrides outside the advisory range
// produce a warning but are honored; cov-family overrides are validated
// strictly and reject the call.
func resolve(cfg Config) (resolved, error) {
	switch cfg.Method {
	case MethodPSD, MethodPSDPrg:
		return resolvePSD(cfg)
	case MethodTree, MethodTreePrg:
		return resolveTree(cfg)
	case MethodCov:
		return resolveCov(cfg)
	default:
		return resolved{}, fmt.Errorf("%w: %s", ErrUnknownMethod, cfg.Method)
	}
}

func resolvePSD(cfg Config) (resolved, error) {
	threshold := defaultPSDThreshold
	if cfg.Method == MethodPSDPrg {
		threshold = defaultPSDPrgThreshold
	}

	if !math.IsNaN(cfg.Threshold) {
		threshold = cfg.Threshold

		if threshold < psdAdvisoryLower || threshold > psdAdvisoryUpper {
			cfg.advise(fmt.Sprintf("psd threshold %g outside [%g, %g]; proceeding with the supplied value",
				threshold, psdAdvisoryLower, psdAdvisoryUpper))
		}
	}

	return resolved{
		method:   cfg.Method,
		psd:      PSDConfig{Threshold: threshold},
		universe: features.Names(),
		columns:  []int{features.Index(features.NormPSDMax)},
	}, nil
}

func resolveTree(cfg Config) (resolved, error) {
	model, err := cfg.LoadModel()
	if err != nil {
		return resolved{}, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}

	variant := tree.VariantAll
	if cfg.Method == MethodTreePrg {
		variant = tree.VariantPrg
	}

	t, err := model.Tree(variant)
	if err != nil {
		return resolved{}, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}

	return resolved{
		method:   cfg.Method,
		tree:     TreeConfig{Variant: variant, Tree: t},
		universe: model.Features,
		columns:  t.VariablesUsed(),
	}, nil
}

func resolveCov(cfg Config) (resolved, error) {
	threshold := defaultCovThreshold
	if !math.IsNaN(cfg.Threshold) {
		threshold = cfg.Threshold
		if threshold < 1 {
			return resolved{}, fmt.Errorf("%w: cov threshold must be >= 1: %g", ErrInvalidParameter, threshold)
		}
	}

	window := defaultCovWindow
	if !math.IsNaN(cfg.WindowLength) {
		window = cfg.WindowLength
		if window <= 0 || window >= 1 {
			return resolved{}, fmt.Errorf("%w: cov window length must be in (0,1): %g", ErrInvalidParameter, window)
		}
	}

	aggregation := window
	if !math.IsNaN(cfg.Aggregation) {
		aggregation = cfg.Aggregation
		if aggregation <= 0 || aggregation > 1 {
			return resolved{}, fmt.Errorf("%w: cov aggregation fraction must be in (0,1]: %g", ErrInvalidParameter, aggregation)
		}
	}

	return resolved{
		method: MethodCov,
		cov: CovConfig{
			Threshold:    threshold,
			WindowLength: window,
			Aggregation:  aggregation,
		},
	}, nil
}

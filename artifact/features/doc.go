// Package features extracts per-window scalar features from multi-channel
// micro-electrode signal segments.
//
// The package defines a fixed 19-name feature universe covering time-domain
// statistics and normalized power-spectral-density descriptors. Callers
// request features by name and receive one row per channel; only the
// requested features are computed.
package features

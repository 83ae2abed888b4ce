// Package artifact labels each one-second segment of a multi-channel
// micro-electrode recording as artifact or clean.
//
// Three interchangeable strategies share a common pipeline (validate,
// configure, build features, classify): a threshold test on the peak
// normalized power-spectral-density value, a pre-trained decision tree over
// a 19-feature vector, and a sliding-window covariance-ratio test on raw
// samples. [Classify] is the single entry point; strategies and tuning
// overrides are selected through options.
package artifact

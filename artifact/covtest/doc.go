// Package covtest flags short-duration artifacts in a single-channel signal
// with a sliding-window covariance-ratio test.
//
// The channel is cut into windows of a fraction of a second, each window's
// variance is compared against the channel's median window variance, and the
// window-level decisions are aggregated to one-second resolution.
package covtest

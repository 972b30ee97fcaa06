// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. It is meant for short filters such as
// polynomial smoothing kernels, where direct convolution is both exact and
// cheap.
//
// This package provides the processing runtime only. Coefficient design
// (Savitzky-Golay, moving average, ...) is a separate concern; see
// dsp/filter/savgol.
package fir

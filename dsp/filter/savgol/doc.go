// Package savgol implements Savitzky-Golay polynomial smoothing.
//
// A Savitzky-Golay filter replaces every sample by the value, at that
// sample, of a polynomial of order p fitted by least squares to the
// surrounding window of odd length w. Peak positions and heights survive
// far better than with a moving average of the same length, which is why
// it is the usual choice for voltammetric and spectroscopic traces.
//
// Interior samples are produced by the [fir] runtime with the centre row of
// the projection matrix as kernel. The first and last w/2 samples are
// evaluated on the polynomial fitted to the first and last full window
// respectively, so the output has exactly the input length and no padding
// values leak in.
//
// Coefficients are designed once per [Filter] with a QR factorisation of
// the Vandermonde matrix of the centred window positions.
package savgol

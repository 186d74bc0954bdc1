package stats

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ShinyaWebDev/sound-to-piano/algorithms/common"
)

// defaultFFTThreshold is the frame length at which Compute switches
// from the direct O(N·lagRange) sum to the FFT path.
const defaultFFTThreshold = 4096

// AutoCorrelation computes the lag-bounded autocorrelation of a signal:
//
//	r[lag] = Σ_{i=0}^{N-1-lag} x[i]·x[i+lag]   for lag ∈ [minLag, min(maxLag, N))
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing"
//
// Short frames use the direct sum; frames at or above the FFT threshold
// switch to the Wiener-Khinchin path (inverse transform of the power
// spectrum, zero-padded to avoid circular wrap), which produces the same
// values up to floating-point rounding.
type AutoCorrelation struct {
	minLag       int
	maxLag       int
	fftThreshold int
}

// NewAutoCorrelation creates an autocorrelation calculator restricted to
// the lag range [minLag, maxLag).
func NewAutoCorrelation(minLag, maxLag int) *AutoCorrelation {
	return &AutoCorrelation{
		minLag:       minLag,
		maxLag:       maxLag,
		fftThreshold: defaultFFTThreshold,
	}
}

// NewAutoCorrelationWithThreshold creates an autocorrelation calculator
// with a custom FFT switch-over frame length. A threshold of 0 forces
// the FFT path for every frame.
func NewAutoCorrelationWithThreshold(minLag, maxLag, fftThreshold int) *AutoCorrelation {
	return &AutoCorrelation{
		minLag:       minLag,
		maxLag:       maxLag,
		fftThreshold: fftThreshold,
	}
}

// Compute returns the autocorrelation array indexed by absolute lag.
// The slice has length min(maxLag, len(signal)); entries below minLag
// are zero. A lag range that is empty for this signal yields nil.
func (ac *AutoCorrelation) Compute(signal []float64) []float64 {
	hi := min(ac.maxLag, len(signal))
	if ac.minLag >= hi {
		return nil
	}

	if len(signal) >= ac.fftThreshold {
		return ac.computeFFT(signal, hi)
	}
	return ac.computeDirect(signal, hi)
}

// computeDirect evaluates the correlation sum lag by lag
func (ac *AutoCorrelation) computeDirect(signal []float64, hi int) []float64 {
	n := len(signal)
	r := make([]float64, hi)

	for lag := ac.minLag; lag < hi; lag++ {
		sum := 0.0
		for i := 0; i < n-lag; i++ {
			sum += signal[i] * signal[i+lag]
		}
		r[lag] = sum
	}

	return r
}

// computeFFT evaluates the correlation via the power spectrum.
// Zero-padding to at least twice the frame length keeps the transform
// linear rather than circular.
func (ac *AutoCorrelation) computeFFT(signal []float64, hi int) []float64 {
	n := len(signal)
	size := common.NextPowerOfTwo(2 * n)

	padded := make([]float64, size)
	copy(padded, signal)

	spectrum := fft.FFTReal(padded)
	for i, elem := range spectrum {
		spectrum[i] = elem * cmplx.Conj(elem)
	}

	correlation := fft.IFFT(spectrum)

	r := make([]float64, hi)
	for lag := ac.minLag; lag < hi; lag++ {
		r[lag] = real(correlation[lag])
	}

	return r
}

// PeakLag finds the lag of the maximum correlation value within
// [minLag, min(maxLag, len(r))), starting from a -Inf sentinel.
// ok is false when the range is empty or contains no valid maximum.
func PeakLag(r []float64, minLag, maxLag int) (int, bool) {
	hi := min(maxLag, len(r))

	maxVal := math.Inf(-1)
	maxIdx := -1
	for lag := minLag; lag < hi; lag++ {
		if r[lag] > maxVal {
			maxVal = r[lag]
			maxIdx = lag
		}
	}

	return maxIdx, maxIdx >= 0
}

// EarliestStrongPeak selects the peak lag to refine: the global maximum
// within [minLag, min(maxLag, len(r))), or the earliest local maximum
// before it whose value reaches ratio·max. An envelope-normalized
// correlation of a periodic signal repeats its peak at every multiple of
// the period; preferring the earliest strong peak keeps the estimate on
// the fundamental instead of a subharmonic.
//
// minLag itself is eligible: its left neighbor is r[minLag-1] when the
// caller computed the correlation below the search range, zero otherwise.
// A fundamental whose period lands on the first searched lag must win
// over its own 2x multiple further out.
func EarliestStrongPeak(r []float64, minLag, maxLag int, ratio float64) (int, bool) {
	peak, ok := PeakLag(r, minLag, maxLag)
	if !ok {
		return 0, false
	}

	maxVal := r[peak]
	if maxVal <= 0 {
		return peak, true
	}

	hi := min(maxLag, len(r))
	floor := ratio * maxVal
	for lag := minLag; lag < hi-1 && lag < peak; lag++ {
		left := 0.0
		if lag > 0 {
			left = r[lag-1]
		}
		if r[lag] >= floor && r[lag] > left && r[lag] >= r[lag+1] {
			return lag, true
		}
	}

	return peak, true
}

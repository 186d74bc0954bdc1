package tuner

import (
	"fmt"
	"math"

	"github.com/ShinyaWebDev/sound-to-piano/algorithms/common"
	"github.com/ShinyaWebDev/sound-to-piano/algorithms/stats"
	"github.com/ShinyaWebDev/sound-to-piano/algorithms/temporal"
	"github.com/ShinyaWebDev/sound-to-piano/algorithms/windowing"
	"github.com/ShinyaWebDev/sound-to-piano/logging"
)

// peakAcceptRatio is the fraction of the global correlation maximum an
// earlier local maximum must reach to be preferred as the period peak.
// After envelope normalization the peak repeats at every multiple of
// the period with nearly equal height, so the earliest strong peak is
// the fundamental.
const peakAcceptRatio = 0.9

// Detector classifies fixed-size audio frames into Silence, NoPitch or
// Detected pitch.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Boersma, P. (1993). "Accurate short-term analysis of the fundamental frequency"
//
// The pipeline per frame: Hann windowing, RMS energy gate, lag-bounded
// autocorrelation normalized by the window's own autocorrelation
// (Boersma-style envelope compensation), earliest-strong-peak selection,
// parabolic sub-sample refinement, then equal-temperament note mapping
// and an optional reference-table match.
//
// A Detector holds only immutable precomputed state (window
// coefficients, lag bounds, the window envelope), so concurrent Analyze
// calls with independent frames are safe. It never retains a reference
// to a caller's frame.
type Detector struct {
	cfg Config

	window   *windowing.Hann
	gate     *temporal.EnergyGate
	autocorr *stats.AutoCorrelation

	// envelope is the autocorrelation of the window coefficients,
	// computed once per window size. Dividing the frame correlation by
	// it removes the taper-induced decay that would otherwise bias the
	// peak toward short lags.
	envelope []float64

	minLag int
	maxLag int

	// corrMinLag is one lag below minLag (floored at zero). Computing
	// the correlation from there gives a peak sitting exactly at minLag
	// a real left neighbor, so it stays selectable and refinable instead
	// of losing to its 2x period multiple.
	corrMinLag int

	log logging.Logger
}

// NewDetector validates the configuration and builds a detector.
// All validation happens here; Analyze never fails on signal content.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detector config: %v", err)
	}

	minLag := int(float64(cfg.SampleRate) / cfg.SearchMaxFreq)
	maxLag := int(float64(cfg.SampleRate) / cfg.SearchMinFreq)
	if maxLag > cfg.WindowSize {
		maxLag = cfg.WindowSize
	}
	corrMinLag := max(minLag-1, 0)

	window := windowing.NewHann(cfg.WindowSize)
	autocorr := stats.NewAutoCorrelation(corrMinLag, maxLag)

	d := &Detector{
		cfg:        cfg,
		window:     window,
		gate:       temporal.NewEnergyGate(cfg.SilenceRMSThreshold),
		autocorr:   autocorr,
		envelope:   autocorr.Compute(window.Coefficients()),
		minLag:     minLag,
		maxLag:     maxLag,
		corrMinLag: corrMinLag,
		log:        logging.GetGlobalLogger(),
	}

	d.log.Debug("pitch detector ready", logging.Fields{
		"window_size": cfg.WindowSize,
		"sample_rate": cfg.SampleRate,
		"min_lag":     minLag,
		"max_lag":     maxLag,
	})

	return d, nil
}

// Config returns the detector configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Analyze classifies one frame of samples. The frame length must equal
// the configured window size; that is the only error condition. All
// numeric trouble on the signal path - a non-periodic frame, a
// non-finite refined frequency, an estimate outside the sanity bounds -
// surfaces as the NoPitch classification, never as an error or a NaN
// escaping to the caller.
func (d *Detector) Analyze(samples []float64) (Result, error) {
	if len(samples) != d.cfg.WindowSize {
		return Result{}, fmt.Errorf("frame size (%d) doesn't match window size (%d)",
			len(samples), d.cfg.WindowSize)
	}

	windowed := d.window.Apply(samples)

	if _, passed := d.gate.Pass(windowed); !passed {
		return Result{Class: Silence}, nil
	}

	r := d.autocorr.Compute(windowed)
	d.normalizeByEnvelope(r)

	peak, ok := stats.EarliestStrongPeak(r, d.minLag, d.maxLag, peakAcceptRatio)
	if !ok {
		return Result{Class: NoPitch}, nil
	}

	freq := d.refineFrequency(r, peak)
	if math.IsNaN(freq) || math.IsInf(freq, 0) ||
		freq < d.cfg.FreqLowerBound || freq > d.cfg.FreqUpperBound {
		return Result{Class: NoPitch}, nil
	}

	midi := MIDIFromFrequency(freq)
	result := Result{
		Class:     Detected,
		Frequency: freq,
		MIDI:      midi,
		NoteName:  NoteName(midi),
		Cents:     CentsOff(freq, midi),
	}

	if len(d.cfg.ReferenceTuning) > 0 {
		if match, ok := d.cfg.ReferenceTuning.Nearest(freq); ok {
			result.Reference = &match
		}
	}

	return result, nil
}

// AnalyzeFloat32 classifies a frame of single-precision samples, the
// native format of audio capture callbacks. It widens into a fresh
// buffer and delegates to Analyze.
func (d *Detector) AnalyzeFloat32(samples []float32) (Result, error) {
	widened := make([]float64, len(samples))
	for i, s := range samples {
		widened[i] = float64(s)
	}
	return d.Analyze(widened)
}

// normalizeByEnvelope divides the frame correlation by the window
// coefficient correlation in place. Lags where the envelope has decayed
// to nothing carry no usable information and are zeroed.
func (d *Detector) normalizeByEnvelope(r []float64) {
	for lag := d.corrMinLag; lag < len(r); lag++ {
		if d.envelope[lag] > 0 {
			r[lag] /= d.envelope[lag]
		} else {
			r[lag] = 0
		}
	}
}

// refineFrequency interpolates the true peak position between samples
// and converts it to Hz. Neighbors outside the computed lag range count
// as zero.
func (d *Detector) refineFrequency(r []float64, peak int) float64 {
	y1, y3 := 0.0, 0.0
	if peak-1 >= d.corrMinLag {
		y1 = r[peak-1]
	}
	if peak+1 < len(r) {
		y3 = r[peak+1]
	}

	trueLag := float64(peak) + common.ParabolicPeak(y1, r[peak], y3)
	return float64(d.cfg.SampleRate) / trueLag
}

package tuner

import "fmt"

// Config contains the parameters of a detection session. Every knob the
// pipeline consults lives here; nothing is baked into the processing code.
type Config struct {
	// Frame geometry
	WindowSize int `json:"window_size"` // samples per analysis frame (N)
	SampleRate int `json:"sample_rate"` // Hz, constant for the session

	// Energy gate
	SilenceRMSThreshold float64 `json:"silence_rms_threshold"` // RMS floor below which a frame is Silence

	// Lag search range for the autocorrelation
	SearchMinFreq float64 `json:"search_min_freq"` // Hz, lowest pitch searched
	SearchMaxFreq float64 `json:"search_max_freq"` // Hz, highest pitch searched

	// Global sanity bounds, wider than the search range, guarding
	// against interpolation artifacts
	FreqLowerBound float64 `json:"freq_lower_bound"` // Hz
	FreqUpperBound float64 `json:"freq_upper_bound"` // Hz

	// Optional table of instrument reference pitches. When non-empty,
	// every detection also reports the nearest table entry.
	ReferenceTuning ReferenceTuning `json:"reference_tuning,omitempty"`
}

// DefaultConfig returns the default detection parameters for a stream at
// the given sample rate.
func DefaultConfig(sampleRate int) Config {
	return Config{
		WindowSize:          2048,
		SampleRate:          sampleRate,
		SilenceRMSThreshold: 0.008,
		SearchMinFreq:       70.0,
		SearchMaxFreq:       1000.0,
		FreqLowerBound:      50.0,
		FreqUpperBound:      1500.0,
	}
}

// Validate rejects configurations the pipeline cannot run with. It is
// called once by NewDetector; per-frame processing never re-validates
// and never fails.
func (c Config) Validate() error {
	if c.WindowSize <= 2 {
		return fmt.Errorf("window size must be at least 3, got %d", c.WindowSize)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.SilenceRMSThreshold < 0 {
		return fmt.Errorf("silence RMS threshold must not be negative, got %g", c.SilenceRMSThreshold)
	}
	if c.SearchMinFreq <= 0 {
		return fmt.Errorf("search min frequency must be positive, got %g", c.SearchMinFreq)
	}
	if c.SearchMinFreq >= c.SearchMaxFreq {
		return fmt.Errorf("search min frequency (%g) must be below search max frequency (%g)",
			c.SearchMinFreq, c.SearchMaxFreq)
	}
	if c.SearchMaxFreq > float64(c.SampleRate) {
		return fmt.Errorf("search max frequency (%g) exceeds sample rate (%d)",
			c.SearchMaxFreq, c.SampleRate)
	}
	if c.FreqLowerBound <= 0 {
		return fmt.Errorf("frequency lower bound must be positive, got %g", c.FreqLowerBound)
	}
	if c.FreqLowerBound >= c.FreqUpperBound {
		return fmt.Errorf("frequency lower bound (%g) must be below upper bound (%g)",
			c.FreqLowerBound, c.FreqUpperBound)
	}
	for i, ref := range c.ReferenceTuning {
		if ref.Name == "" {
			return fmt.Errorf("reference tuning entry %d has an empty name", i)
		}
		if ref.Frequency <= 0 {
			return fmt.Errorf("reference tuning entry %q has non-positive frequency %g",
				ref.Name, ref.Frequency)
		}
	}
	return nil
}

package temporal

import (
	"github.com/ShinyaWebDev/sound-to-piano/algorithms/common"
)

// EnergyGate rejects frames whose RMS energy falls below a silence floor.
// Gating happens before any correlation work so quiet frames cost almost
// nothing and ambient noise never produces a pitch.
type EnergyGate struct {
	threshold float64
}

// NewEnergyGate creates an energy gate with the given RMS silence floor
func NewEnergyGate(threshold float64) *EnergyGate {
	return &EnergyGate{
		threshold: threshold,
	}
}

// Threshold returns the configured RMS silence floor
func (g *EnergyGate) Threshold() float64 {
	return g.threshold
}

// Pass computes the RMS energy of the frame and reports whether it
// clears the silence floor.
func (g *EnergyGate) Pass(frame []float64) (float64, bool) {
	rms := common.RMS(frame)
	return rms, rms >= g.threshold
}

// AdaptiveThreshold suggests a silence floor from observed frame
// energies: mean minus two standard deviations, falling back to 10% of
// the mean when the statistics collapse. Callers calibrating a gate for
// an unknown input level can feed it a warm-up run of frame energies.
func AdaptiveThreshold(energies []float64) float64 {
	if len(energies) == 0 {
		return 0.0
	}

	mean := common.Mean(energies)
	stdDev := common.StandardDeviation(energies)

	threshold := mean - 2.0*stdDev
	if threshold <= 0 {
		threshold = mean * 0.1
	}

	return threshold
}

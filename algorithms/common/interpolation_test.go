package common

import (
	"math"
	"testing"
)

func TestParabolicPeak(t *testing.T) {
	testCases := []struct {
		name       string
		y1, y2, y3 float64
		expected   float64
	}{
		{"symmetric peak", 0.5, 1.0, 0.5, 0.0},
		{"leaning right", 0.0, 1.0, 0.5, 0.5 * (0.0 - 0.5) / (0.0 - 2.0 + 0.5)},
		{"leaning left", 0.5, 1.0, 0.0, 0.5 * (0.5 - 0.0) / (0.5 - 2.0 + 0.0)},
		{"flat", 1.0, 1.0, 1.0, 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParabolicPeak(tc.y1, tc.y2, tc.y3)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("ParabolicPeak(%g, %g, %g) = %g, expected %g",
					tc.y1, tc.y2, tc.y3, got, tc.expected)
			}
		})
	}
}

// A parabola sampled at three integer positions must be recovered
// exactly: the refinement is exact for quadratics.
func TestParabolicPeakRecoversVertex(t *testing.T) {
	for _, vertex := range []float64{-0.4, -0.25, 0.0, 0.1, 0.3, 0.49} {
		parabola := func(x float64) float64 { return 1.0 - (x-vertex)*(x-vertex) }

		got := ParabolicPeak(parabola(-1), parabola(0), parabola(1))
		if math.Abs(got-vertex) > 1e-12 {
			t.Errorf("vertex %g recovered as %g", vertex, got)
		}
	}
}

func TestParabolicPeakBounded(t *testing.T) {
	// A genuine local maximum refines to within half a sample
	got := ParabolicPeak(0.2, 1.0, 0.9)
	if got <= -0.5 || got >= 0.5 {
		t.Errorf("shift %g outside (-0.5, 0.5)", got)
	}
}

package common

// ParabolicPeak returns the sub-sample offset of the vertex of the
// parabola through three equally spaced samples, where y2 is the
// sampled peak and y1/y3 its neighbors. The returned shift is relative
// to the position of y2; a zero-curvature triple yields 0.
func ParabolicPeak(y1, y2, y3 float64) float64 {
	denom := y1 - 2*y2 + y3
	if denom == 0 {
		return 0.0
	}
	return 0.5 * (y1 - y3) / denom
}

package audio

import "fmt"

// FrameSession slices a continuous signal into fixed-size analysis
// frames with a constant hop. It carries no per-call state; the same
// session can cut multiple signals.
type FrameSession struct {
	size int
	hop  int
}

// NewFrameSession creates a framer producing frames of size samples
// every hop samples. hop <= size gives overlapping frames.
func NewFrameSession(size, hop int) (*FrameSession, error) {
	if size <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %d", size)
	}
	if hop <= 0 {
		return nil, fmt.Errorf("hop must be positive, got %d", hop)
	}
	return &FrameSession{size: size, hop: hop}, nil
}

// Size returns the frame length in samples.
func (s *FrameSession) Size() int {
	return s.size
}

// Hop returns the frame advance in samples.
func (s *FrameSession) Hop() int {
	return s.hop
}

// NumFrames returns how many complete frames fit in a signal of the
// given length. Trailing samples that cannot fill a frame are dropped.
func (s *FrameSession) NumFrames(signalLen int) int {
	if signalLen < s.size {
		return 0
	}
	return (signalLen-s.size)/s.hop + 1
}

// Frames cuts the signal into complete frames. The returned slices are
// views into the input, not copies; callers that mutate frames (or the
// underlying signal) must copy first.
func (s *FrameSession) Frames(signal []float64) [][]float64 {
	n := s.NumFrames(len(signal))
	if n == 0 {
		return nil
	}
	frames := make([][]float64, n)
	for i := 0; i < n; i++ {
		start := i * s.hop
		frames[i] = signal[start : start+s.size]
	}
	return frames
}

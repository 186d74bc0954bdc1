package audio

import "testing"

func TestNewFrameSessionValidation(t *testing.T) {
	if _, err := NewFrameSession(0, 512); err == nil {
		t.Error("expected error for zero frame size")
	}
	if _, err := NewFrameSession(2048, 0); err == nil {
		t.Error("expected error for zero hop")
	}
	if _, err := NewFrameSession(2048, -1); err == nil {
		t.Error("expected error for negative hop")
	}

	s, err := NewFrameSession(2048, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Size() != 2048 || s.Hop() != 1024 {
		t.Errorf("Size/Hop = %d/%d, expected 2048/1024", s.Size(), s.Hop())
	}
}

func TestNumFrames(t *testing.T) {
	testCases := []struct {
		size, hop, signalLen, expected int
	}{
		{4, 2, 10, 4},
		{4, 4, 10, 2},
		{4, 1, 4, 1},
		{4, 2, 3, 0},
		{2048, 1024, 0, 0},
		{2048, 1024, 2048, 1},
		{2048, 1024, 4096, 3},
	}

	for _, tc := range testCases {
		s, err := NewFrameSession(tc.size, tc.hop)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.NumFrames(tc.signalLen); got != tc.expected {
			t.Errorf("NumFrames(size=%d, hop=%d, len=%d) = %d, expected %d",
				tc.size, tc.hop, tc.signalLen, got, tc.expected)
		}
	}
}

func TestFrames(t *testing.T) {
	s, err := NewFrameSession(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	signal := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	frames := s.Frames(signal)

	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}

	for i, frame := range frames {
		if len(frame) != 4 {
			t.Fatalf("frame %d has length %d, expected 4", i, len(frame))
		}
		for j, sample := range frame {
			expected := float64(i*2 + j)
			if sample != expected {
				t.Errorf("frame %d sample %d = %g, expected %g", i, j, sample, expected)
			}
		}
	}
}

func TestFramesAreViews(t *testing.T) {
	s, err := NewFrameSession(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	signal := make([]float64, 8)
	frames := s.Frames(signal)

	signal[5] = 42
	if frames[1][1] != 42 {
		t.Error("frames should alias the input signal, not copy it")
	}
}

func TestFramesShortSignal(t *testing.T) {
	s, err := NewFrameSession(2048, 1024)
	if err != nil {
		t.Fatal(err)
	}

	if frames := s.Frames(make([]float64, 100)); frames != nil {
		t.Errorf("expected nil for a signal shorter than one frame, got %d frames", len(frames))
	}
}

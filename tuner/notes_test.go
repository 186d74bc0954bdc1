package tuner

import (
	"math"
	"testing"
)

func TestMIDIFromFrequency(t *testing.T) {
	testCases := []struct {
		freq     float64
		expected int
	}{
		{440.0, 69},    // A4
		{261.63, 60},   // C4
		{82.41, 40},    // E2
		{466.16, 70},   // A#4
		{27.5, 21},     // A0
		{4186.01, 108}, // C8
		{442.0, 69},    // slightly sharp A4 rounds to A4
		{428.0, 69},    // flat but still closest to A4
	}

	for _, tc := range testCases {
		if got := MIDIFromFrequency(tc.freq); got != tc.expected {
			t.Errorf("MIDIFromFrequency(%g) = %d, expected %d", tc.freq, got, tc.expected)
		}
	}
}

func TestNoteName(t *testing.T) {
	testCases := []struct {
		midi     int
		expected string
	}{
		{69, "A4"},
		{60, "C4"},
		{61, "C#4"},
		{40, "E2"},
		{21, "A0"},
		{108, "C8"},
		{59, "B3"},
		{0, "C-1"},
	}

	for _, tc := range testCases {
		if got := NoteName(tc.midi); got != tc.expected {
			t.Errorf("NoteName(%d) = %q, expected %q", tc.midi, got, tc.expected)
		}
	}
}

func TestIdealFrequency(t *testing.T) {
	testCases := []struct {
		midi     int
		expected float64
	}{
		{69, 440.0},
		{57, 220.0},
		{81, 880.0},
		{60, 261.6256},
		{21, 27.5},
	}

	for _, tc := range testCases {
		got := IdealFrequency(tc.midi)
		if math.Abs(got-tc.expected) > 1e-3 {
			t.Errorf("IdealFrequency(%d) = %g, expected %g", tc.midi, got, tc.expected)
		}
	}
}

func TestCentsOff(t *testing.T) {
	if got := CentsOff(440.0, 69); got != 0 {
		t.Errorf("CentsOff(440, 69) = %d, expected 0", got)
	}

	// A semitone sharp of A4 is +100 cents
	if got := CentsOff(466.1638, 69); got != 100 {
		t.Errorf("CentsOff(466.1638, 69) = %d, expected 100", got)
	}

	// 435 Hz against A4: 1200·log2(435/440) ≈ -19.8, rounds to -20
	if got := CentsOff(435.0, 69); got != -20 {
		t.Errorf("CentsOff(435, 69) = %d, expected -20", got)
	}
}

func TestMIDIFrequencyRoundTrip(t *testing.T) {
	for midi := 21; midi <= 108; midi++ {
		freq := IdealFrequency(midi)
		if got := MIDIFromFrequency(freq); got != midi {
			t.Errorf("round trip for MIDI %d via %g Hz gave %d", midi, freq, got)
		}
		if cents := CentsOff(freq, midi); cents != 0 {
			t.Errorf("CentsOff(IdealFrequency(%d), %d) = %d, expected 0", midi, midi, cents)
		}
	}
}

package tuner

import (
	"fmt"
	"math"
)

// Equal-temperament note mapping around the A4 = 440 Hz = MIDI 69
// reference. These are pure functions with no session state.

const (
	refFrequencyA4 = 440.0
	midiA4         = 69
	centsPerOctave = 1200.0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MIDIFromFrequency returns the MIDI number of the equal-tempered note
// closest to the given frequency.
func MIDIFromFrequency(freq float64) int {
	return int(math.Round(12.0*math.Log2(freq/refFrequencyA4) + midiA4))
}

// NoteName returns the letter name and octave of a MIDI number,
// e.g. NoteName(69) == "A4". The +1200 offset keeps the pitch-class
// index non-negative for any representable MIDI value.
func NoteName(midi int) string {
	class := (midi + 1200) % 12
	octave := int(math.Floor(float64(midi)/12.0)) - 1
	return fmt.Sprintf("%s%d", noteNames[class], octave)
}

// IdealFrequency returns the equal-tempered frequency of a MIDI number.
func IdealFrequency(midi int) float64 {
	return refFrequencyA4 * math.Pow(2, float64(midi-midiA4)/12.0)
}

// CentsOff returns the rounded deviation, in cents, of a frequency from
// the ideal frequency of the given MIDI number. Positive means sharp.
func CentsOff(freq float64, midi int) int {
	return int(math.Round(centsPerOctave * math.Log2(freq/IdealFrequency(midi))))
}

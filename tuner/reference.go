package tuner

import "math"

// ReferencePitch is one named entry of an instrument tuning table.
type ReferencePitch struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"` // Hz
}

// ReferenceTuning is an ordered table of instrument reference pitches.
// Order matters: ties in distance resolve to the earlier entry, so a
// fixed table always produces a deterministic match.
type ReferenceTuning []ReferencePitch

// ReferenceMatch reports the table entry closest to a detected
// frequency, with the deviation from it in cents (positive = sharp).
type ReferenceMatch struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"`
	Cents     int     `json:"cents"`
}

// Nearest returns the entry whose frequency minimizes the absolute
// distance to freq. ok is false for an empty table.
func (t ReferenceTuning) Nearest(freq float64) (ReferenceMatch, bool) {
	if len(t) == 0 {
		return ReferenceMatch{}, false
	}

	best := t[0]
	bestDist := math.Abs(freq - best.Frequency)
	for _, entry := range t[1:] {
		dist := math.Abs(freq - entry.Frequency)
		if dist < bestDist {
			best = entry
			bestDist = dist
		}
	}

	return ReferenceMatch{
		Name:      best.Name,
		Frequency: best.Frequency,
		Cents:     int(math.Round(centsPerOctave * math.Log2(freq/best.Frequency))),
	}, true
}

// GuitarStandard returns the six open-string pitches of a standard-tuned
// guitar, low to high.
func GuitarStandard() ReferenceTuning {
	return ReferenceTuning{
		{Name: "E2", Frequency: 82.4069},
		{Name: "A2", Frequency: 110.0000},
		{Name: "D3", Frequency: 146.8324},
		{Name: "G3", Frequency: 195.9978},
		{Name: "B3", Frequency: 246.9417},
		{Name: "E4", Frequency: 329.6276},
	}
}

// PianoRange returns the 88 keys of a standard piano, A0 through C8,
// generated from the equal-temperament formula.
func PianoRange() ReferenceTuning {
	const midiA0, midiC8 = 21, 108

	table := make(ReferenceTuning, 0, midiC8-midiA0+1)
	for midi := midiA0; midi <= midiC8; midi++ {
		table = append(table, ReferencePitch{
			Name:      NoteName(midi),
			Frequency: IdealFrequency(midi),
		})
	}
	return table
}

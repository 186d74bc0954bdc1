package tuner

// Classification is the per-frame verdict of the detection pipeline.
// Every frame is classified fresh; no state carries over between frames.
type Classification int

const (
	// Silence means the frame's RMS energy fell below the silence floor.
	Silence Classification = iota

	// NoPitch means the frame was loud enough but no credible
	// periodicity was found within the configured bounds.
	NoPitch

	// Detected means a fundamental frequency was estimated and mapped
	// to a note.
	Detected
)

func (c Classification) String() string {
	switch c {
	case Silence:
		return "silence"
	case NoPitch:
		return "no-pitch"
	case Detected:
		return "detected"
	default:
		return "unknown"
	}
}

// Result is the classification of one analysis frame. Frequency, MIDI,
// NoteName and Cents are meaningful only when Class is Detected.
// Reference is non-nil only when a reference tuning table is configured
// and a pitch was detected.
type Result struct {
	Class     Classification  `json:"class"`
	Frequency float64         `json:"frequency,omitempty"` // Hz
	MIDI      int             `json:"midi,omitempty"`
	NoteName  string          `json:"note_name,omitempty"`
	Cents     int             `json:"cents,omitempty"` // deviation from the ideal note frequency
	Reference *ReferenceMatch `json:"reference,omitempty"`
}

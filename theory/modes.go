package theory

// Mode is a seven-step scale described by the semitone gaps between
// consecutive degrees. Every table entry's steps sum to an octave.
type Mode struct {
	Name  string
	Steps [7]uint8
}

// Modes holds the scales the composer can walk.
var Modes = map[string]Mode{
	"ionian":         {Name: "Ionian (major)", Steps: [7]uint8{2, 2, 1, 2, 2, 2, 1}},
	"dorian":         {Name: "Dorian", Steps: [7]uint8{2, 1, 2, 2, 2, 1, 2}},
	"phrygian":       {Name: "Phrygian", Steps: [7]uint8{1, 2, 2, 2, 1, 2, 2}},
	"lydian":         {Name: "Lydian", Steps: [7]uint8{2, 2, 2, 1, 2, 2, 1}},
	"mixolydian":     {Name: "Mixolydian", Steps: [7]uint8{2, 2, 1, 2, 2, 1, 2}},
	"aeolian":        {Name: "Aeolian (natural minor)", Steps: [7]uint8{2, 1, 2, 2, 1, 2, 2}},
	"locrian":        {Name: "Locrian", Steps: [7]uint8{1, 2, 2, 1, 2, 2, 2}},
	"harmonic minor": {Name: "Harmonic minor", Steps: [7]uint8{2, 1, 2, 2, 1, 3, 1}},
	"melodic minor":  {Name: "Melodic minor", Steps: [7]uint8{2, 1, 2, 2, 2, 2, 1}},
}

// DefaultMode is used when a saved or requested mode is unknown.
const DefaultMode = "ionian"

// ModeNames returns the mode names in menu order.
func ModeNames() []string {
	return []string{
		"ionian", "dorian", "phrygian", "lydian", "mixolydian",
		"aeolian", "locrian", "harmonic minor", "melodic minor",
	}
}

// GetMode looks up a mode by name, falling back to DefaultMode.
func GetMode(name string) Mode {
	if m, ok := Modes[name]; ok {
		return m
	}
	return Modes[DefaultMode]
}

// Scale returns one octave of m upward from root, octave included:
// eight keys for a full seven-step mode. The walk stops early rather
// than leave the MIDI key range.
func Scale(root uint8, m Mode) []uint8 {
	keys := make([]uint8, 0, len(m.Steps)+1)
	keys = append(keys, root)
	k := int(root)
	for _, step := range m.Steps {
		k += int(step)
		if k > 127 {
			break
		}
		keys = append(keys, uint8(k))
	}
	return keys
}

// Arpeggio returns the keys of the mode's tonic chord: root, third,
// fifth and octave, truncated at the top of the key range.
func Arpeggio(root uint8, m Mode) []uint8 {
	third := int(root) + int(m.Steps[0]) + int(m.Steps[1])
	fifth := third + int(m.Steps[2]) + int(m.Steps[3])
	keys := make([]uint8, 0, 4)
	for _, k := range []int{int(root), third, fifth, int(root) + 12} {
		if k > 127 {
			break
		}
		keys = append(keys, uint8(k))
	}
	return keys
}

// Phrase lays out bars' worth of scale degrees, climbing on even bars
// and coming back down on odd ones.
func Phrase(root uint8, m Mode, bars int) []uint8 {
	return weave(Scale(root, m), bars)
}

// ArpeggioPhrase is Phrase over the tonic-chord keys instead of the
// full scale.
func ArpeggioPhrase(root uint8, m Mode, bars int) []uint8 {
	return weave(Arpeggio(root, m), bars)
}

// weave repeats line across bars, forward on even bars and reversed on
// odd ones.
func weave(line []uint8, bars int) []uint8 {
	keys := make([]uint8, 0, bars*len(line))
	for b := 0; b < bars; b++ {
		if b%2 == 0 {
			keys = append(keys, line...)
		} else {
			for i := len(line) - 1; i >= 0; i-- {
				keys = append(keys, line[i])
			}
		}
	}
	return keys
}

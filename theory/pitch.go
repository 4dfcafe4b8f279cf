package theory

// PitchClass identifies one of the twelve chromatic pitch classes.
type PitchClass uint8

const (
	C PitchClass = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
)

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p PitchClass) String() string {
	return pitchNames[p%12]
}

// ParsePitchClass resolves a sharp-spelled name like "C" or "F#".
func ParsePitchClass(name string) (PitchClass, bool) {
	for i, n := range pitchNames {
		if n == name {
			return PitchClass(i), true
		}
	}
	return 0, false
}

// Keynum returns the MIDI key number of a pitch class in an octave,
// with middle C (key 60) in octave 4. Out-of-range results clamp to
// the 0..127 key range.
func Keynum(class PitchClass, octave int) uint8 {
	n := (octave+1)*12 + int(class%12)
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}

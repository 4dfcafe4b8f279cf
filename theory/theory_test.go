package theory

import "testing"

func TestKeynum(t *testing.T) {
	cases := []struct {
		class  PitchClass
		octave int
		want   uint8
	}{
		{C, 4, 60}, // middle C
		{A, 4, 69},
		{C, -1, 0},
		{G, 9, 127}, // G9 is the top of the range
		{B, 9, 127}, // clamped
		{C, 0, 12},
	}
	for _, c := range cases {
		if got := Keynum(c.class, c.octave); got != c.want {
			t.Errorf("Keynum(%s, %d): got %d, want %d", c.class, c.octave, got, c.want)
		}
	}
}

func TestPitchClassNames(t *testing.T) {
	if C.String() != "C" || Fs.String() != "F#" || B.String() != "B" {
		t.Errorf("pitch class names: %s %s %s", C, Fs, B)
	}
	if p, ok := ParsePitchClass("G#"); !ok || p != Gs {
		t.Errorf("ParsePitchClass(G#): got %v, %v", p, ok)
	}
	if _, ok := ParsePitchClass("H"); ok {
		t.Error("ParsePitchClass accepted H")
	}
	for _, name := range []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"} {
		p, ok := ParsePitchClass(name)
		if !ok || p.String() != name {
			t.Errorf("%q does not round trip (got %v, %v)", name, p, ok)
		}
	}
}

func TestModeTables(t *testing.T) {
	names := ModeNames()
	if len(names) != len(Modes) {
		t.Errorf("ModeNames lists %d modes, table has %d", len(names), len(Modes))
	}
	for _, name := range names {
		m, ok := Modes[name]
		if !ok {
			t.Errorf("ModeNames lists %q, not in table", name)
			continue
		}
		sum := 0
		for _, s := range m.Steps {
			sum += int(s)
		}
		if sum != 12 {
			t.Errorf("%s steps sum to %d semitones", name, sum)
		}
	}
	if got := GetMode("whole tone"); got.Name != Modes[DefaultMode].Name {
		t.Errorf("unknown mode resolved to %s", got.Name)
	}
}

func TestScale(t *testing.T) {
	got := Scale(60, GetMode("ionian"))
	want := []uint8{60, 62, 64, 65, 67, 69, 71, 72}
	if len(got) != len(want) {
		t.Fatalf("C major scale has %d keys: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("degree %d: got %d, want %d", i, got[i], want[i])
		}
	}

	minor := Scale(57, GetMode("aeolian"))
	wantMinor := []uint8{57, 59, 60, 62, 64, 65, 67, 69}
	for i := range wantMinor {
		if minor[i] != wantMinor[i] {
			t.Errorf("A minor degree %d: got %d, want %d", i, minor[i], wantMinor[i])
		}
	}

	// Near the top of the key range the walk cuts off instead of
	// wrapping.
	high := Scale(120, GetMode("ionian"))
	wantHigh := []uint8{120, 122, 124, 125, 127}
	if len(high) != len(wantHigh) {
		t.Fatalf("scale from 120 has %d keys: %v", len(high), high)
	}
	for i := range wantHigh {
		if high[i] != wantHigh[i] {
			t.Errorf("high degree %d: got %d, want %d", i, high[i], wantHigh[i])
		}
	}
}

func TestArpeggio(t *testing.T) {
	got := Arpeggio(60, GetMode("ionian"))
	want := []uint8{60, 64, 67, 72} // C major chord
	if len(got) != len(want) {
		t.Fatalf("C arpeggio has %d keys: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chord tone %d: got %d, want %d", i, got[i], want[i])
		}
	}

	minor := Arpeggio(57, GetMode("aeolian"))
	wantMinor := []uint8{57, 60, 64, 69} // A minor chord
	for i := range wantMinor {
		if minor[i] != wantMinor[i] {
			t.Errorf("A minor tone %d: got %d, want %d", i, minor[i], wantMinor[i])
		}
	}

	high := Arpeggio(120, GetMode("ionian"))
	wantHigh := []uint8{120, 124, 127}
	if len(high) != len(wantHigh) {
		t.Fatalf("arpeggio from 120 has %d keys: %v", len(high), high)
	}
}

func TestPhrase(t *testing.T) {
	keys := Phrase(60, GetMode("ionian"), 2)
	if len(keys) != 16 {
		t.Fatalf("two bars yield %d keys", len(keys))
	}
	if keys[0] != 60 || keys[7] != 72 {
		t.Errorf("ascent runs %d..%d", keys[0], keys[7])
	}
	if keys[8] != 72 || keys[15] != 60 {
		t.Errorf("descent runs %d..%d", keys[8], keys[15])
	}
	if got := Phrase(60, GetMode("ionian"), 0); len(got) != 0 {
		t.Errorf("zero bars yield %d keys", len(got))
	}
}

func TestArpeggioPhrase(t *testing.T) {
	keys := ArpeggioPhrase(60, GetMode("ionian"), 2)
	if len(keys) != 8 {
		t.Fatalf("two bars yield %d keys", len(keys))
	}
	if keys[0] != 60 || keys[3] != 72 {
		t.Errorf("ascent runs %d..%d", keys[0], keys[3])
	}
	if keys[4] != 72 || keys[7] != 60 {
		t.Errorf("descent runs %d..%d", keys[4], keys[7])
	}
}

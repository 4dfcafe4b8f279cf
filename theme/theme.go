package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/cienicera/midi-fun-contract/midi"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Cursor  rune // ▶ selected row
	Gutter  rune // · unselected row
	NoteOn  rune // ● note start
	NoteOff rune // ○ note end
	Meta    rune // ◆ tempo / time signature
	Sysex   rune // ■ system exclusive
}

func New() *Theme {
	return &Theme{
		Palette: Ember,
		Symbols: Symbols{
			Cursor:  '▶',
			Gutter:  '·',
			NoteOn:  '●',
			NoteOff: '○',
			Meta:    '◆',
			Sysex:   '■',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0  // near-black violet
	RoleSurface = 0.1  // dark violet
	RoleMuted   = 0.25 // low-contrast labels
	RoleFG      = 0.6  // readable body text
	RoleAccent  = 0.75 // highlights
	RoleCursor  = 0.85 // selection marker
	RoleWarning = 0.9  // faults, refused exports
	RoleSuccess = 1.0  // confirmed writes
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// EventSymbol picks the list glyph for an event kind.
func (t *Theme) EventSymbol(e midi.Event) rune {
	switch e.(type) {
	case midi.NoteOn:
		return t.Symbols.NoteOn
	case midi.NoteOff:
		return t.Symbols.NoteOff
	case midi.SystemExclusive:
		return t.Symbols.Sysex
	case midi.SetTempo, midi.TimeSignature:
		return t.Symbols.Meta
	}
	return t.Symbols.Gutter
}

// EventColor picks the list color for an event. Notes ride the
// velocity ramp so loud and quiet read differently at a glance.
func (t *Theme) EventColor(e midi.Event) lipgloss.Color {
	switch ev := e.(type) {
	case midi.NoteOn:
		return t.Color(velocityRamp(ev.Velocity))
	case midi.NoteOff:
		return t.Muted()
	case midi.SetTempo, midi.TimeSignature:
		return t.Color(RoleWarning)
	case midi.SystemExclusive:
		return t.Color(0.35)
	}
	return t.FG()
}

// velocityRamp maps velocity 0..127 into the upper half of the
// palette, keeping even the softest notes readable.
func velocityRamp(vel uint8) float64 {
	return 0.45 + 0.55*float64(vel&0x7F)/127
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

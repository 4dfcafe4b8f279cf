package midi

import (
	"fmt"

	"github.com/cienicera/midi-fun-contract/fixed"
)

// MIDI status bytes
const (
	statusNoteOff       uint8 = 0x80
	statusNoteOn        uint8 = 0x90
	statusPolyTouch     uint8 = 0xA0
	statusControlChange uint8 = 0xB0
	statusProgramChange uint8 = 0xC0
	statusAfterTouch    uint8 = 0xD0
	statusPitchWheel    uint8 = 0xE0
	statusSysExStart    uint8 = 0xF0
	statusSysExEnd      uint8 = 0xF7
	statusMeta          uint8 = 0xFF
)

// Meta event types
const (
	metaSetTempo      uint8 = 0x51
	metaTimeSignature uint8 = 0x58
	metaEndOfTrack    uint8 = 0x2F
)

// PitchCenter is the PitchWheel value for no bend (middle of the
// 14-bit range).
const PitchCenter uint16 = 0x2000

// Event is one message in a Sequence. The set of implementations is
// closed: the ten variants below cover every message the encoders
// understand, fixed by the MIDI standard.
//
// Seven variants carry a mandatory timestamp. SetTempo, TimeSignature
// and SystemExclusive may leave theirs nil, which places them at the
// same tick as the event before them.
type Event interface {
	fmt.Stringer

	// timestamp reports the event's own absolute time, if it has one.
	timestamp() (fixed.Point, bool)
}

// NoteOn starts a note. Velocity 0 is a legal "note off" per the MIDI
// standard but is emitted verbatim, not rewritten.
type NoteOn struct {
	Channel  uint8       `json:"channel"`
	Note     uint8       `json:"note"`
	Velocity uint8       `json:"velocity"`
	Time     fixed.Point `json:"time"`
}

// NoteOff ends a note. Velocity is the release velocity, normally 0.
type NoteOff struct {
	Channel  uint8       `json:"channel"`
	Note     uint8       `json:"note"`
	Velocity uint8       `json:"velocity"`
	Time     fixed.Point `json:"time"`
}

// SetTempo changes the playback tempo. Tempo is in microseconds per
// quarter note (500000 is 120 BPM) and must fit in 24 bits.
type SetTempo struct {
	Tempo uint32       `json:"tempo"`
	Time  *fixed.Point `json:"time"`
}

// TimeSignature declares the meter. Denominator is the actual note
// value (4 for quarter notes) and must be a power of two between 1 and
// 128.
type TimeSignature struct {
	Numerator   uint8        `json:"numerator"`
	Denominator uint8        `json:"denominator"`
	Time        *fixed.Point `json:"time"`
}

// ControlChange sets a controller value.
type ControlChange struct {
	Channel uint8       `json:"channel"`
	Control uint8       `json:"control"`
	Value   uint8       `json:"value"`
	Time    fixed.Point `json:"time"`
}

// PitchWheel bends pitch. Pitch is the raw 14-bit value with
// PitchCenter meaning no bend.
type PitchWheel struct {
	Channel uint8       `json:"channel"`
	Pitch   uint16      `json:"pitch"`
	Time    fixed.Point `json:"time"`
}

// AfterTouch applies pressure to the whole channel.
type AfterTouch struct {
	Channel  uint8       `json:"channel"`
	Pressure uint8       `json:"pressure"`
	Time     fixed.Point `json:"time"`
}

// PolyTouch applies pressure to a single held note.
type PolyTouch struct {
	Channel  uint8       `json:"channel"`
	Note     uint8       `json:"note"`
	Pressure uint8       `json:"pressure"`
	Time     fixed.Point `json:"time"`
}

// ProgramChange selects an instrument patch.
type ProgramChange struct {
	Channel uint8       `json:"channel"`
	Program uint8       `json:"program"`
	Time    fixed.Point `json:"time"`
}

// SystemExclusive carries a manufacturer-specific payload. Device and
// Checksum are optional and skipped when nil. All payload bytes must
// stay below 0x80 on the wire.
type SystemExclusive struct {
	Manufacturer []byte       `json:"manufacturer"`
	Device       *uint8       `json:"device"`
	Data         []byte       `json:"data"`
	Checksum     *uint8       `json:"checksum"`
	Time         *fixed.Point `json:"time"`
}

// payload assembles the bytes between the 0xF0 status and the closing
// 0xF7: manufacturer id, optional device id, data, optional checksum.
func (e SystemExclusive) payload() []byte {
	p := make([]byte, 0, len(e.Manufacturer)+len(e.Data)+2)
	p = append(p, e.Manufacturer...)
	if e.Device != nil {
		p = append(p, *e.Device)
	}
	p = append(p, e.Data...)
	if e.Checksum != nil {
		p = append(p, *e.Checksum)
	}
	return p
}

func (e NoteOn) timestamp() (fixed.Point, bool)        { return e.Time, true }
func (e NoteOff) timestamp() (fixed.Point, bool)       { return e.Time, true }
func (e ControlChange) timestamp() (fixed.Point, bool) { return e.Time, true }
func (e PitchWheel) timestamp() (fixed.Point, bool)    { return e.Time, true }
func (e AfterTouch) timestamp() (fixed.Point, bool)    { return e.Time, true }
func (e PolyTouch) timestamp() (fixed.Point, bool)     { return e.Time, true }
func (e ProgramChange) timestamp() (fixed.Point, bool) { return e.Time, true }

func (e SetTempo) timestamp() (fixed.Point, bool) {
	if e.Time == nil {
		return 0, false
	}
	return *e.Time, true
}

func (e TimeSignature) timestamp() (fixed.Point, bool) {
	if e.Time == nil {
		return 0, false
	}
	return *e.Time, true
}

func (e SystemExclusive) timestamp() (fixed.Point, bool) {
	if e.Time == nil {
		return 0, false
	}
	return *e.Time, true
}

func (e NoteOn) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, t:%s}", e.Channel, e.Note, e.Velocity, e.Time)
}

func (e NoteOff) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, t:%s}", e.Channel, e.Note, e.Velocity, e.Time)
}

func (e SetTempo) String() string {
	if e.Time == nil {
		return fmt.Sprintf("SetTempo{usPerQuarter:%d}", e.Tempo)
	}
	return fmt.Sprintf("SetTempo{usPerQuarter:%d, t:%s}", e.Tempo, e.Time)
}

func (e TimeSignature) String() string {
	if e.Time == nil {
		return fmt.Sprintf("TimeSignature{%d/%d}", e.Numerator, e.Denominator)
	}
	return fmt.Sprintf("TimeSignature{%d/%d, t:%s}", e.Numerator, e.Denominator, e.Time)
}

func (e ControlChange) String() string {
	return fmt.Sprintf("ControlChange{ch:%d, ctrl:%d, val:%d, t:%s}", e.Channel, e.Control, e.Value, e.Time)
}

func (e PitchWheel) String() string {
	return fmt.Sprintf("PitchWheel{ch:%d, pitch:%d, t:%s}", e.Channel, e.Pitch, e.Time)
}

func (e AfterTouch) String() string {
	return fmt.Sprintf("AfterTouch{ch:%d, pressure:%d, t:%s}", e.Channel, e.Pressure, e.Time)
}

func (e PolyTouch) String() string {
	return fmt.Sprintf("PolyTouch{ch:%d, note:%d, pressure:%d, t:%s}", e.Channel, e.Note, e.Pressure, e.Time)
}

func (e ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange{ch:%d, prog:%d, t:%s}", e.Channel, e.Program, e.Time)
}

func (e SystemExclusive) String() string {
	if e.Time == nil {
		return fmt.Sprintf("SysEx{mfr:% X, data:%d bytes}", e.Manufacturer, len(e.Data))
	}
	return fmt.Sprintf("SysEx{mfr:% X, data:%d bytes, t:%s}", e.Manufacturer, len(e.Data), e.Time)
}

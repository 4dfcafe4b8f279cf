package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// LiveMessage converts e to the wire form used on a live MIDI
// connection. SetTempo and TimeSignature only exist inside an SMF
// track, so ok is false for those; every other variant converts.
// PitchWheel's raw 14-bit value becomes the signed offset from center
// that live pitch bend uses.
func LiveMessage(e Event) (msg gomidi.Message, ok bool) {
	switch ev := e.(type) {
	case NoteOn:
		return gomidi.NoteOn(ev.Channel, ev.Note, ev.Velocity), true
	case NoteOff:
		if ev.Velocity == 0 {
			return gomidi.NoteOff(ev.Channel, ev.Note), true
		}
		return gomidi.NoteOffVelocity(ev.Channel, ev.Note, ev.Velocity), true
	case ControlChange:
		return gomidi.ControlChange(ev.Channel, ev.Control, ev.Value), true
	case PitchWheel:
		return gomidi.Pitchbend(ev.Channel, int16(int32(ev.Pitch)-int32(PitchCenter))), true
	case AfterTouch:
		return gomidi.AfterTouch(ev.Channel, ev.Pressure), true
	case PolyTouch:
		return gomidi.PolyAfterTouch(ev.Channel, ev.Note, ev.Pressure), true
	case ProgramChange:
		return gomidi.ProgramChange(ev.Channel, ev.Program), true
	case SystemExclusive:
		return gomidi.SysEx(ev.payload()), true
	}
	return nil, false
}

// LiveMessages converts the whole sequence in order, dropping the
// SMF-only events.
func (s *Sequence) LiveMessages() []gomidi.Message {
	msgs := make([]gomidi.Message, 0, len(s.events))
	for _, e := range s.events {
		if m, ok := LiveMessage(e); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

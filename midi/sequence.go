package midi

import "github.com/cienicera/midi-fun-contract/fixed"

// TicksPerQuarter is the fixed SMF time resolution: every event
// timestamp's integer part counts ticks of 1/480 of a quarter note.
const TicksPerQuarter = 480

// Sequence is an ordered list of events. List order is encoding order;
// together with each event's absolute time it determines the
// delta-times in the SMF output, so callers append events with
// non-decreasing timestamps.
type Sequence struct {
	events []Event
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds events to the end of the sequence.
func (s *Sequence) Append(events ...Event) {
	s.events = append(s.events, events...)
}

// Len returns the number of events.
func (s *Sequence) Len() int {
	return len(s.events)
}

// At returns the event at index i.
func (s *Sequence) At(i int) Event {
	return s.events[i]
}

// Events returns a copy of the event list. The sequence keeps
// exclusive ownership of its own slice.
func (s *Sequence) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// EvenPhrase builds a sequence that plays keys back to back, each held
// for noteTicks, at a fixed tempo in 4/4.
func EvenPhrase(keys []uint8, channel, velocity uint8, tempo uint32, noteTicks int32) *Sequence {
	seq := NewSequence()
	start := fixed.FromInt(0)
	seq.Append(
		TimeSignature{Numerator: 4, Denominator: 4, Time: &start},
		SetTempo{Tempo: tempo},
	)
	at := int32(0)
	for _, key := range keys {
		seq.Append(
			NoteOn{Channel: channel, Note: key, Velocity: velocity, Time: fixed.FromInt(at)},
			NoteOff{Channel: channel, Note: key, Time: fixed.FromInt(at + noteTicks)},
		)
		at += noteTicks
	}
	return seq
}

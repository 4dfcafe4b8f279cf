package midi

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Encoding faults.
var (
	// ErrNonMonotonicTime reports an event whose absolute time is
	// earlier than the event encoded before it. A wrapped delta would
	// corrupt every delta after it, so the encoder refuses instead.
	ErrNonMonotonicTime = errors.New("non-monotonic event time")

	// ErrFieldRange reports an event field too wide for its slot in
	// the byte stream.
	ErrFieldRange = errors.New("field out of range for MIDI byte encoding")
)

// EncodeSMF renders the sequence as a complete Standard MIDI File,
// Format 0: the fixed 14-byte header, then one MTrk chunk holding
// every event as a delta-time followed by its message bytes, closed by
// End-of-Track. The returned buffer is independent of the sequence and
// the sequence is never modified.
//
// Fields are validated as they are narrowed to wire bytes; nothing is
// masked or truncated silently. On any fault the partial stream is
// discarded and only the error is returned.
func (s *Sequence) EncodeSMF() ([]byte, error) {
	body := NewOutput()
	appendFileHeader(body)

	body.Append([]byte("MTrk"))
	lengthAt := body.Len()
	body.Append([]byte{0x00, 0x00, 0x00, 0x00}) // patched below

	var (
		prev  int64
		delta []byte
	)
	for i := 0; i < s.Len(); i++ {
		e := s.At(i)
		tick := prev
		if t, ok := e.timestamp(); ok {
			tick = int64(t.Int())
		}
		if tick < prev {
			return nil, fmt.Errorf("event %d at tick %d after tick %d: %w", i, tick, prev, ErrNonMonotonicTime)
		}
		delta = AppendVLQ(delta[:0], uint32(tick-prev))
		prev = tick

		body.Append(delta)
		if err := appendEventBytes(body, e); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	body.Append([]byte{0x00, statusMeta, metaEndOfTrack, 0x00})

	// The track length is only known now. Rebuild into a fresh sink:
	// everything before the placeholder, the real big-endian length,
	// everything after it.
	raw := body.Bytes()
	length := uint32(len(raw) - lengthAt - 4)
	out := NewOutput()
	out.Append(raw[:lengthAt])
	var be [4]byte
	binary.BigEndian.PutUint32(be[:], length)
	out.Append(be[:])
	out.Append(raw[lengthAt+4:])
	return out.Bytes(), nil
}

// appendFileHeader writes the 14 header bytes every output starts
// with, independent of sequence contents.
func appendFileHeader(out *Output) {
	out.Append([]byte("MThd"))
	out.Append([]byte{0x00, 0x00, 0x00, 0x06}) // header length
	out.Append([]byte{0x00, 0x00})             // format 0
	out.Append([]byte{0x00, 0x01})             // single track
	out.Append([]byte{0x01, 0xE0})             // 480 ticks per quarter note
}

// appendEventBytes emits the status and data bytes for a single event,
// validating every field against the width of its slot.
func appendEventBytes(out *Output, e Event) error {
	switch ev := e.(type) {
	case NoteOn:
		err := errors.Join(checkChannel(ev.Channel), check7("note", ev.Note), check7("velocity", ev.Velocity))
		if err != nil {
			return fmt.Errorf("note on: %w", err)
		}
		out.AppendByte(statusNoteOn | ev.Channel)
		out.AppendByte(ev.Note)
		out.AppendByte(ev.Velocity)

	case NoteOff:
		err := errors.Join(checkChannel(ev.Channel), check7("note", ev.Note), check7("velocity", ev.Velocity))
		if err != nil {
			return fmt.Errorf("note off: %w", err)
		}
		out.AppendByte(statusNoteOff | ev.Channel)
		out.AppendByte(ev.Note)
		out.AppendByte(ev.Velocity)

	case SetTempo:
		if ev.Tempo > 0xFFFFFF {
			return fmt.Errorf("set tempo: tempo %d: %w", ev.Tempo, ErrFieldRange)
		}
		out.AppendByte(statusMeta)
		out.AppendByte(metaSetTempo)
		out.AppendByte(0x03) // payload length
		out.AppendByte(byte(ev.Tempo >> 16))
		out.AppendByte(byte(ev.Tempo >> 8))
		out.AppendByte(byte(ev.Tempo))

	case TimeSignature:
		dd, err := denomLog2(ev.Denominator)
		if err != nil {
			return fmt.Errorf("time signature: %w", err)
		}
		out.AppendByte(statusMeta)
		out.AppendByte(metaTimeSignature)
		out.AppendByte(0x04) // payload length
		out.AppendByte(ev.Numerator)
		out.AppendByte(dd)
		out.AppendByte(0x18) // MIDI clocks per metronome click
		out.AppendByte(0x08) // 32nd notes per quarter note

	case ControlChange:
		err := errors.Join(checkChannel(ev.Channel), check7("control", ev.Control), check7("value", ev.Value))
		if err != nil {
			return fmt.Errorf("control change: %w", err)
		}
		out.AppendByte(statusControlChange | ev.Channel)
		out.AppendByte(ev.Control)
		out.AppendByte(ev.Value)

	case PitchWheel:
		if err := checkChannel(ev.Channel); err != nil {
			return fmt.Errorf("pitch wheel: %w", err)
		}
		if ev.Pitch > 0x3FFF {
			return fmt.Errorf("pitch wheel: pitch %d: %w", ev.Pitch, ErrFieldRange)
		}
		out.AppendByte(statusPitchWheel | ev.Channel)
		out.AppendByte(byte(ev.Pitch & 0x7F)) // low 7 bits first
		out.AppendByte(byte(ev.Pitch >> 7))

	case AfterTouch:
		err := errors.Join(checkChannel(ev.Channel), check7("pressure", ev.Pressure))
		if err != nil {
			return fmt.Errorf("after touch: %w", err)
		}
		out.AppendByte(statusAfterTouch | ev.Channel)
		out.AppendByte(ev.Pressure)

	case PolyTouch:
		err := errors.Join(checkChannel(ev.Channel), check7("note", ev.Note), check7("pressure", ev.Pressure))
		if err != nil {
			return fmt.Errorf("poly touch: %w", err)
		}
		out.AppendByte(statusPolyTouch | ev.Channel)
		out.AppendByte(ev.Note)
		out.AppendByte(ev.Pressure)

	case ProgramChange:
		err := errors.Join(checkChannel(ev.Channel), check7("program", ev.Program))
		if err != nil {
			return fmt.Errorf("program change: %w", err)
		}
		out.AppendByte(statusProgramChange | ev.Channel)
		out.AppendByte(ev.Program)

	case SystemExclusive:
		payload := ev.payload()
		for _, b := range payload {
			if b > 0x7F {
				return fmt.Errorf("sysex: payload byte %#02x: %w", b, ErrFieldRange)
			}
		}
		out.AppendByte(statusSysExStart)
		// Length counts the payload plus the closing 0xF7.
		out.Append(AppendVLQ(nil, uint32(len(payload)+1)))
		out.Append(payload)
		out.AppendByte(statusSysExEnd)

	default:
		return fmt.Errorf("unhandled event type %T", e)
	}
	return nil
}

func checkChannel(ch uint8) error {
	if ch > 0x0F {
		return fmt.Errorf("channel %d: %w", ch, ErrFieldRange)
	}
	return nil
}

func check7(what string, v uint8) error {
	if v > 0x7F {
		return fmt.Errorf("%s %d: %w", what, v, ErrFieldRange)
	}
	return nil
}

// denomLog2 maps a time signature denominator to the exponent SMF
// stores. Only powers of two up to 128 exist in the format.
func denomLog2(d uint8) (uint8, error) {
	switch d {
	case 1:
		return 0, nil
	case 2:
		return 1, nil
	case 4:
		return 2, nil
	case 8:
		return 3, nil
	case 16:
		return 4, nil
	case 32:
		return 5, nil
	case 64:
		return 6, nil
	case 128:
		return 7, nil
	}
	return 0, fmt.Errorf("denominator %d: %w", d, ErrFieldRange)
}

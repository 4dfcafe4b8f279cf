package midi

import (
	"testing"

	"github.com/cienicera/midi-fun-contract/fixed"
)

func TestSequenceAccessors(t *testing.T) {
	seq := NewSequence()
	if seq.Len() != 0 {
		t.Errorf("new sequence has %d events", seq.Len())
	}

	on := NoteOn{Note: 60, Velocity: 100, Time: fixed.FromInt(0)}
	off := NoteOff{Note: 60, Time: fixed.FromInt(480)}
	seq.Append(on, off)
	if seq.Len() != 2 {
		t.Fatalf("after two appends Len is %d", seq.Len())
	}
	if got := seq.At(0).(NoteOn); got != on {
		t.Errorf("At(0): got %v", got)
	}
	if got := seq.At(1).(NoteOff); got != off {
		t.Errorf("At(1): got %v", got)
	}
}

func TestSequenceEventsCopy(t *testing.T) {
	seq := NewSequence()
	on := NoteOn{Note: 60, Velocity: 100, Time: fixed.FromInt(0)}
	seq.Append(on)

	evs := seq.Events()
	evs[0] = NoteOff{Note: 60}
	if got := seq.At(0).(NoteOn); got != on {
		t.Error("Events() aliases the sequence's own list")
	}
}

func TestEncodeDoesNotMutateSequence(t *testing.T) {
	seq := NewSequence()
	seq.Append(
		NoteOn{Note: 60, Velocity: 100, Time: fixed.FromInt(0)},
		NoteOff{Note: 60, Time: fixed.FromInt(480)},
	)
	first, err := seq.EncodeSMF()
	if err != nil {
		t.Fatalf("EncodeSMF: %v", err)
	}
	second, err := seq.EncodeSMF()
	if err != nil {
		t.Fatalf("second EncodeSMF: %v", err)
	}
	checkBytes(t, second, first)
	if seq.Len() != 2 {
		t.Errorf("encoding changed the sequence to %d events", seq.Len())
	}
}

func TestEvenPhrase(t *testing.T) {
	keys := []uint8{60, 62, 64}
	seq := EvenPhrase(keys, 1, 100, 500000, 240)

	if got, want := seq.Len(), 2+2*len(keys); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	ts, ok := seq.At(0).(TimeSignature)
	if !ok || ts.Numerator != 4 || ts.Denominator != 4 {
		t.Fatalf("event 0 = %v, want a 4/4 time signature", seq.At(0))
	}
	if ts.Time == nil || ts.Time.Int() != 0 {
		t.Fatal("time signature is not pinned to tick 0")
	}
	tempo, ok := seq.At(1).(SetTempo)
	if !ok || tempo.Tempo != 500000 {
		t.Fatalf("event 1 = %v, want SetTempo 500000", seq.At(1))
	}

	for i, key := range keys {
		on, ok := seq.At(2+2*i).(NoteOn)
		if !ok {
			t.Fatalf("event %d is not a NoteOn", 2+2*i)
		}
		if on.Channel != 1 || on.Note != key || on.Velocity != 100 || on.Time.Int() != int32(i)*240 {
			t.Errorf("NoteOn %d = %v", i, on)
		}
		off, ok := seq.At(3+2*i).(NoteOff)
		if !ok {
			t.Fatalf("event %d is not a NoteOff", 3+2*i)
		}
		if off.Channel != 1 || off.Note != key || off.Time.Int() != int32(i+1)*240 {
			t.Errorf("NoteOff %d = %v", i, off)
		}
	}

	if _, err := seq.EncodeSMF(); err != nil {
		t.Fatalf("EncodeSMF() = %v", err)
	}
}

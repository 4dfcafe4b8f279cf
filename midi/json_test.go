package midi

import (
	"encoding/json"
	"testing"

	"github.com/cienicera/midi-fun-contract/fixed"
)

func TestEncodeJSONEmpty(t *testing.T) {
	got, err := NewSequence().EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	if string(got) != `{"events":[]}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeJSONNoteOn(t *testing.T) {
	seq := NewSequence()
	seq.Append(NoteOn{Channel: 0, Note: 60, Velocity: 100, Time: fixed.FromInt(480)})
	got, err := seq.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	want := `{"events":[{"type":"NoteOn","channel":0,"note":60,"velocity":100,"time":480.000000}]}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestEncodeJSONOptionalTimeNull(t *testing.T) {
	seq := NewSequence()
	seq.Append(SetTempo{Tempo: 500000})
	got, err := seq.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	want := `{"events":[{"type":"SetTempo","tempo":500000,"time":null}]}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

// The output must read back through a plain JSON parser with the
// variant name in "type" and every field under its own name.
func TestEncodeJSONReadBack(t *testing.T) {
	start := fixed.FromInt(0)
	seq := NewSequence()
	seq.Append(
		TimeSignature{Numerator: 3, Denominator: 4, Time: &start},
		NoteOn{Channel: 2, Note: 64, Velocity: 90, Time: fixed.FromInt(480)},
		PitchWheel{Channel: 2, Pitch: 8192, Time: fixed.FromInt(600)},
		SystemExclusive{Manufacturer: []byte{0x7E}, Data: []byte{0x09, 0x01}},
	)
	out, err := seq.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	var doc struct {
		Events []map[string]any `json:"events"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	if len(doc.Events) != 4 {
		t.Fatalf("got %d events, want 4", len(doc.Events))
	}

	ts := doc.Events[0]
	if ts["type"] != "TimeSignature" || ts["numerator"] != float64(3) || ts["denominator"] != float64(4) {
		t.Errorf("time signature read back as %v", ts)
	}
	if v, present := ts["time"]; !present || v != float64(0) {
		t.Errorf("present timestamp read back as %v", v)
	}

	note := doc.Events[1]
	if note["type"] != "NoteOn" || note["channel"] != float64(2) ||
		note["note"] != float64(64) || note["velocity"] != float64(90) ||
		note["time"] != float64(480) {
		t.Errorf("note on read back as %v", note)
	}

	wheel := doc.Events[2]
	if wheel["type"] != "PitchWheel" || wheel["pitch"] != float64(8192) {
		t.Errorf("pitch wheel read back as %v", wheel)
	}

	sysex := doc.Events[3]
	if sysex["type"] != "SystemExclusive" {
		t.Errorf("sysex read back as %v", sysex)
	}
	mfr, ok := sysex["manufacturer"].([]any)
	if !ok || len(mfr) != 1 || mfr[0] != float64(0x7E) {
		t.Errorf("manufacturer read back as %v", sysex["manufacturer"])
	}
	data, ok := sysex["data"].([]any)
	if !ok || len(data) != 2 || data[0] != float64(9) || data[1] != float64(1) {
		t.Errorf("data read back as %v", sysex["data"])
	}
	if v, present := sysex["device"]; !present || v != nil {
		t.Errorf("unset device read back as %v", v)
	}
	if v, present := sysex["time"]; !present || v != nil {
		t.Errorf("unset timestamp read back as %v", v)
	}
}

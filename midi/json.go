package midi

import (
	"encoding/json"

	"github.com/cienicera/midi-fun-contract/fixed"
)

// EncodeJSON renders the sequence as UTF-8 JSON with the shape
// {"events":[...]}: one object per event, a "type" field naming the
// variant, then the variant's own fields. Optional timestamps render
// as null when unset. An empty sequence yields {"events":[]}.
func (s *Sequence) EncodeJSON() ([]byte, error) {
	events := s.events
	if events == nil {
		events = []Event{}
	}
	return json.Marshal(struct {
		Events []Event `json:"events"`
	}{events})
}

// The shadow types below are plain copies of each variant: conversion
// drops the MarshalJSON method, so embedding one encodes the field set
// without recursing.

func (e NoteOn) MarshalJSON() ([]byte, error) {
	type plain NoteOn
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"NoteOn", plain(e)})
}

func (e NoteOff) MarshalJSON() ([]byte, error) {
	type plain NoteOff
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"NoteOff", plain(e)})
}

func (e SetTempo) MarshalJSON() ([]byte, error) {
	type plain SetTempo
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"SetTempo", plain(e)})
}

func (e TimeSignature) MarshalJSON() ([]byte, error) {
	type plain TimeSignature
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"TimeSignature", plain(e)})
}

func (e ControlChange) MarshalJSON() ([]byte, error) {
	type plain ControlChange
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"ControlChange", plain(e)})
}

func (e PitchWheel) MarshalJSON() ([]byte, error) {
	type plain PitchWheel
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"PitchWheel", plain(e)})
}

func (e AfterTouch) MarshalJSON() ([]byte, error) {
	type plain AfterTouch
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"AfterTouch", plain(e)})
}

func (e PolyTouch) MarshalJSON() ([]byte, error) {
	type plain PolyTouch
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"PolyTouch", plain(e)})
}

func (e ProgramChange) MarshalJSON() ([]byte, error) {
	type plain ProgramChange
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{"ProgramChange", plain(e)})
}

// SystemExclusive widens its byte slices to number arrays by hand;
// encoding/json would otherwise render []byte as base64.
func (e SystemExclusive) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         string       `json:"type"`
		Manufacturer []int        `json:"manufacturer"`
		Device       *uint8       `json:"device"`
		Data         []int        `json:"data"`
		Checksum     *uint8       `json:"checksum"`
		Time         *fixed.Point `json:"time"`
	}{"SystemExclusive", byteValues(e.Manufacturer), e.Device, byteValues(e.Data), e.Checksum, e.Time})
}

func byteValues(p []byte) []int {
	out := make([]int, len(p))
	for i, b := range p {
		out[i] = int(b)
	}
	return out
}

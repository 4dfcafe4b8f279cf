package fixed

import "testing"

func TestDecimal(t *testing.T) {
	cases := []struct {
		p    Point
		want string
	}{
		{FromInt(0), "0.000000"},
		{FromInt(480), "480.000000"},
		{FromInt(-1), "-1.000000"},
		{One, "1.000000"},
		{FromFloat(1.5), "1.500000"},
		{FromFloat(120.25), "120.250000"},
		// Fractions that don't divide 10^6 truncate rather than round.
		{FromFloat(0.1), "0.099999"},
		// Negative values render floor plus offset: -0.5 is -1 + 0.5.
		{FromFloat(-0.5), "-1.500000"},
		{FromFloat(-1.25), "-2.750000"},
	}
	for _, c := range cases {
		if got := c.p.Decimal(); got != c.want {
			t.Errorf("Decimal(%d): got %q, want %q", int64(c.p), got, c.want)
		}
	}
}

func TestIntFracSplit(t *testing.T) {
	cases := []Point{
		FromInt(0),
		FromInt(480),
		FromInt(-3),
		FromFloat(1.5),
		FromFloat(-0.5),
		FromFloat(-123.875),
	}
	for _, p := range cases {
		back := FromInt(p.Int()) + Point(p.Frac())
		if back != p {
			t.Errorf("Int/Frac split of %d reassembles to %d", int64(p), int64(back))
		}
	}
	if got := FromFloat(-0.5).Int(); got != -1 {
		t.Errorf("Int(-0.5): got %d, want -1", got)
	}
	if got := FromFloat(1.5).Frac(); got != 0x80000000 {
		t.Errorf("Frac(1.5): got %#x, want 0x80000000", got)
	}
}

func TestArithmetic(t *testing.T) {
	if got := FromInt(480).Add(FromFloat(0.5)).Decimal(); got != "480.500000" {
		t.Errorf("480 + 0.5: got %q", got)
	}
	if got := FromInt(480).Sub(FromFloat(0.5)).Decimal(); got != "479.500000" {
		t.Errorf("480 - 0.5: got %q", got)
	}
	if got := FromFloat(960.0).Float(); got != 960.0 {
		t.Errorf("Float round trip: got %v", got)
	}
}

func TestJSON(t *testing.T) {
	for _, p := range []Point{FromInt(0), FromInt(480), FromFloat(1.5)} {
		data, err := p.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%d): %v", int64(p), err)
		}
		var back Point
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if back != p {
			t.Errorf("JSON round trip of %d: got %d", int64(p), int64(back))
		}
	}
	if data, _ := FromInt(480).MarshalJSON(); string(data) != "480.000000" {
		t.Errorf("MarshalJSON(480): got %s", data)
	}
	var p Point
	if err := p.UnmarshalJSON([]byte("bogus")); err == nil {
		t.Error("UnmarshalJSON accepted a non-number")
	}
}

package fixed

import (
	"fmt"
	"strconv"
)

// Point is a signed fixed-point number with 32 integer bits and 32
// fractional bits, stored in a single int64. Event timestamps use the
// integer part as a tick count and keep the fraction for sub-tick
// placement.
type Point int64

// One is the Point representation of 1.
const One Point = 1 << 32

// FromInt returns the Point holding exactly n.
func FromInt(n int32) Point {
	return Point(int64(n) << 32)
}

// FromFloat returns the Point nearest f, truncating precision finer
// than 2^-32.
func FromFloat(f float64) Point {
	return Point(f * (1 << 32))
}

// Int returns the integer part of p. For negative values this is the
// floor, not truncation toward zero: -0.5 has integer part -1.
func (p Point) Int() int32 {
	return int32(p >> 32)
}

// Frac returns the fractional part of p as a 32-bit offset above the
// floor, so p == FromInt(p.Int()) + Point(p.Frac()) always holds.
func (p Point) Frac() uint32 {
	return uint32(p)
}

// Float returns p as a float64. Values wider than 52 bits lose
// precision.
func (p Point) Float() float64 {
	return float64(p) / (1 << 32)
}

func (p Point) Add(q Point) Point { return p + q }

func (p Point) Sub(q Point) Point { return p - q }

// Decimal renders p with six fractional digits, truncated. The digits
// follow the floor/offset split from Int and Frac, so -0.5 renders as
// "-1.500000": one below the floor plus half above it.
func (p Point) Decimal() string {
	frac := uint64(p.Frac()) * 1000000 >> 32
	return fmt.Sprintf("%d.%06d", p.Int(), frac)
}

func (p Point) String() string { return p.Decimal() }

// MarshalJSON writes p as a plain JSON number in Decimal form.
func (p Point) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal()), nil
}

// UnmarshalJSON reads any JSON number, keeping whatever precision
// survives the float64 parse.
func (p *Point) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("fixed: parsing %q: %w", s, err)
	}
	*p = FromFloat(f)
	return nil
}

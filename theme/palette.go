package theme

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

// Ember is the built-in gradient, dark violet up through gold. Role
// positions and the velocity ramp both index into it.
var Ember = &Palette{
	Name: "ember",
	Colors: []RGB{
		{0x16, 0x0A, 0x22},
		{0x35, 0x17, 0x4A},
		{0x5E, 0x24, 0x68},
		{0x92, 0x36, 0x77},
		{0xC2, 0x4F, 0x6E},
		{0xE8, 0x6F, 0x4C},
		{0xF9, 0x9E, 0x36},
		{0xFF, 0xD4, 0x66},
	},
}

// Lookup returns interpolated color for normalized value 0-1
func (p *Palette) Lookup(norm float64) RGB {
	if norm <= 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	// Find the two colors to interpolate between
	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	c0 := p.Colors[i]
	c1 := p.Colors[i+1]

	return RGB{
		lerp(c0[0], c1[0], frac),
		lerp(c0[1], c1[1], frac),
		lerp(c0[2], c1[2], frac),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// Index returns color at specific index (no interpolation)
func (p *Palette) Index(i int) RGB {
	if i < 0 {
		return p.Colors[0]
	}
	if i >= len(p.Colors) {
		return p.Colors[len(p.Colors)-1]
	}
	return p.Colors[i]
}

package solarsystem

import "image/color"

var (
	hoverEmissive  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	selectEmissive = color.RGBA{0x77, 0x77, 0x77, 0xff}
	white          = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

const (
	hoverLighten  = 0.2
	selectLighten = 0.4
)

// Material is the surface state the picker highlights. Basic tier materials have no
// emissive channel and get their color lightened instead.
type Material struct {
	Color       color.RGBA
	Emissive    color.RGBA
	HasEmissive bool
	Opacity     float64
}

// NewMaterial returns an opaque material for the given rendering tier.
func NewMaterial(tier RenderingTier, c color.RGBA) *Material {
	m := &Material{Color: c, Opacity: 1}
	switch tier {
	case TierFull:
		m.HasEmissive = true
	case TierBasic:
	}
	return m
}

func (m *Material) highlight(emissive color.RGBA, lighten float64) {
	if m.HasEmissive {
		m.Emissive = emissive
		return
	}
	m.Color = lerpRGBA(m.Color, white, lighten)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// Hex converts a 0xRRGGBB literal into an opaque color.
func Hex(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

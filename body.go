package solarsystem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitalSpeedFactor is the numerator of the inverse square root falloff used to
// derive a body's orbital speed from its radius.
const OrbitalSpeedFactor = 0.02

// Body is the simulation state of one celestial object. It only refers to its
// scene graph nodes by id, the Graph owns them.
type Body struct {
	ID string

	OrbitalRadius float64
	OrbitalAngle  float64
	OrbitalSpeed  float64

	RotationAngle float64
	RotationSpeed float64

	AxialTilt    float64
	Inclination  float64
	HeightOffset float64
	SpinAxis     mgl64.Vec3

	// OrbitNode is positioned on the orbit, SpinNode receives the spin. They can be
	// the same node when nothing is parented to the body.
	OrbitNode uint64
	SpinNode  uint64
}

// OrbitalSpeedFor returns 0.02/sqrt(radius), or 0 for a body sitting on the origin.
func OrbitalSpeedFor(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return OrbitalSpeedFactor / math.Sqrt(radius)
}

// NewBody creates a body on the positive x axis with its orbital speed derived from radius.
func NewBody(id string, radius, rotationSpeed float64) *Body {
	return &Body{
		ID:            id,
		OrbitalRadius: radius,
		OrbitalSpeed:  OrbitalSpeedFor(radius),
		RotationSpeed: rotationSpeed,
		SpinAxis:      mgl64.Vec3{0, 1, 0},
	}
}

// OrbitPosition is the body position in its parent's space for the current orbital angle.
func (b *Body) OrbitPosition() mgl64.Vec3 {
	x := b.OrbitalRadius * math.Cos(b.OrbitalAngle)
	inPlane := b.OrbitalRadius * math.Sin(b.OrbitalAngle)
	y := inPlane*math.Sin(b.Inclination) + b.HeightOffset
	z := inPlane * math.Cos(b.Inclination)
	return mgl64.Vec3{x, y, z}
}

// SpinRotation is the euler rotation (XYZ order) written to the spin node.
func (b *Body) SpinRotation() mgl64.Vec3 {
	return mgl64.Vec3{b.AxialTilt, 0, 0}.Add(b.SpinAxis.Mul(b.RotationAngle))
}

// Step advances both angles by delta scaled time.
func (b *Body) Step(delta float64) {
	b.OrbitalAngle += b.OrbitalSpeed * delta
	b.RotationAngle += b.RotationSpeed * delta
}

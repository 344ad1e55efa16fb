package solarsystem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	// FovY in degrees.
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64

	Width, Height int
}

// DefaultCameraPosition is the start position, shared by the reset and solar presets.
var DefaultCameraPosition = mgl64.Vec3{0, 30, 90}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		Position: DefaultCameraPosition,
		Up:       mgl64.Vec3{0, 1, 0},
		FovY:     60,
		Near:     0.1,
		Far:      2000,
		Aspect:   1,
	}
	c.Resize(width, height)
	return c
}

// Resize recomputes the aspect ratio from the viewport. Degenerate sizes are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width, c.Height = width, height
	c.Aspect = float64(width) / float64(height)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Ray is a half line; Dir is unit length.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// RayFromNDC casts a ray from the camera through normalized device coordinates.
func (c *Camera) RayFromNDC(ndc mgl64.Vec2) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndc[0], ndc[1], 0.5, 1})
	pt := p.Vec3().Mul(1 / p[3])
	return Ray{Origin: c.Position, Dir: pt.Sub(c.Position).Normalize()}
}

// Project maps a world point to NDC. ok is false behind the camera.
func (c *Camera) Project(p mgl64.Vec3) (mgl64.Vec3, bool) {
	v := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if v[3] <= 0 {
		return mgl64.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v[3]), true
}

// ClientToNDC maps window coordinates (origin top left) to [-1,1] with y up.
func ClientToNDC(x, y float64, width, height int) (mgl64.Vec2, bool) {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{
		x/float64(width)*2 - 1,
		-(y/float64(height))*2 + 1,
	}, true
}

// intersectShape tests r against shape placed by world. It returns the world
// ray parameter of the nearest hit in front of the origin.
func intersectShape(r Ray, shape Shape, world mgl64.Mat4) (float64, bool) {
	if shape.Kind == ShapeNone {
		return 0, false
	}
	inv := world.Inv()
	// The direction is not renormalized so t stays a world space parameter.
	o := inv.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(r.Dir.Vec4(0)).Vec3()

	switch shape.Kind {
	case ShapeSphere:
		a := d.Dot(d)
		b := 2 * o.Dot(d)
		cc := o.Dot(o) - shape.Radius*shape.Radius
		disc := b*b - 4*a*cc
		if a == 0 || disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		t := (-b - sq) / (2 * a)
		if t < 0 {
			t = (-b + sq) / (2 * a)
		}
		if t < 0 {
			return 0, false
		}
		return t, true
	case ShapeRing:
		if math.Abs(d[1]) < 1e-12 {
			return 0, false
		}
		t := -o[1] / d[1]
		if t < 0 {
			return 0, false
		}
		p := o.Add(d.Mul(t))
		dist := math.Hypot(p[0], p[2])
		if dist < shape.InnerRadius || dist > shape.Radius {
			return 0, false
		}
		return t, true
	}
	return 0, false
}

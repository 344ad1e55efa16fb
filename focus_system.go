package solarsystem

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

const (
	// FocusDuration is how long the camera takes to reach a newly selected body, in seconds.
	FocusDuration = 1.0
	// AutoRotateSpeed is the camera orbit rate in radians per second, one turn in 30s.
	AutoRotateSpeed = 2 * math.Pi / 30
)

// CubicInOut eases t in [0,1].
func CubicInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

type cameraTween struct {
	fromPos, toPos       mgl64.Vec3
	fromTarget, toTarget mgl64.Vec3
	elapsed              float64
}

// FocusSystem eases the camera toward whatever gets selected. It only moves the
// camera, never bodies or materials.
type FocusSystem struct {
	Ctx *SimulationContext
	// AutoRotate orbits the camera around its target when no move is in progress.
	AutoRotate bool

	tween *cameraTween
}

func (*FocusSystem) Priority() int { return 40 }

func (*FocusSystem) Remove(ecs.BasicEntity) {}

// Listen subscribes to selection messages on the context mailbox.
func (fs *FocusSystem) Listen() {
	if fs.Ctx == nil || fs.Ctx.Mailbox == nil {
		return
	}
	fs.Ctx.Mailbox.Listen(SelectMessage{}.Type(), func(msg engo.Message) {
		sm, ok := msg.(SelectMessage)
		if !ok {
			return
		}
		fs.Focus(sm.BodyID)
	})
}

// Focus starts moving the camera so that it looks at the body from a distance of
// five times its size, keeping the current viewing direction.
func (fs *FocusSystem) Focus(bodyID string) {
	sc := fs.Ctx
	if sc == nil || sc.Camera == nil || sc.Graph == nil {
		return
	}
	n := sc.Graph.Tagged(bodyID)
	if n == nil {
		return
	}
	target := sc.Graph.WorldPosition(n.ID())
	dist := math.Max(n.Shape.Radius*5, 5)
	dir := sc.Camera.Position.Sub(sc.Camera.Target)
	if dir.Len() == 0 {
		dir = mgl64.Vec3{0, 0, 1}
	}
	fs.moveTo(target.Add(dir.Normalize().Mul(dist)), target)
	log.WithField("body", bodyID).Debug("Focusing camera")
}

// ToggleAutoRotate flips AutoRotate and returns the new value.
func (fs *FocusSystem) ToggleAutoRotate() bool {
	fs.AutoRotate = !fs.AutoRotate
	log.WithField("on", fs.AutoRotate).Info("Camera auto-rotate")
	return fs.AutoRotate
}

// Preset jumps to one of the named camera setups: "reset", "solar", "nebula" or
// "blackhole".
func (fs *FocusSystem) Preset(name string, as *AnimationSystem) {
	sc := fs.Ctx
	if sc == nil || sc.Camera == nil {
		return
	}
	switch name {
	case "reset", "solar":
		fs.jump(DefaultCameraPosition, mgl64.Vec3{})
	case "nebula":
		fs.jump(NebulaPosition.Add(mgl64.Vec3{20, 10, 60}), NebulaPosition)
	case "blackhole":
		if _, err := AddBlackHole(sc, as); err != nil {
			log.WithError(err).Warn("Unable to add black hole")
			return
		}
		fs.jump(BlackHolePosition.Add(mgl64.Vec3{0, 5, 30}), BlackHolePosition)
	default:
		log.WithField("preset", name).Warn("Unknown camera preset")
	}
}

func (fs *FocusSystem) jump(pos, target mgl64.Vec3) {
	fs.tween = nil
	fs.Ctx.Camera.Position = pos
	fs.Ctx.Camera.Target = target
}

func (fs *FocusSystem) moveTo(pos, target mgl64.Vec3) {
	fs.tween = &cameraTween{
		fromPos:    fs.Ctx.Camera.Position,
		toPos:      pos,
		fromTarget: fs.Ctx.Camera.Target,
		toTarget:   target,
	}
}

// Busy reports whether a camera move is in progress.
func (fs *FocusSystem) Busy() bool { return fs.tween != nil }

func (fs *FocusSystem) Update(dt float32) {
	if fs.Ctx == nil || fs.Ctx.Camera == nil {
		return
	}
	if fs.tween == nil {
		if fs.AutoRotate {
			fs.orbit(AutoRotateSpeed * float64(dt))
		}
		return
	}
	tw := fs.tween
	tw.elapsed += float64(dt)
	t := math.Min(tw.elapsed/FocusDuration, 1)
	k := CubicInOut(t)
	cam := fs.Ctx.Camera
	cam.Position = tw.fromPos.Add(tw.toPos.Sub(tw.fromPos).Mul(k))
	cam.Target = tw.fromTarget.Add(tw.toTarget.Sub(tw.fromTarget).Mul(k))
	if t >= 1 {
		fs.tween = nil
	}
}

// orbit turns the camera position about the vertical axis through its target.
func (fs *FocusSystem) orbit(angle float64) {
	cam := fs.Ctx.Camera
	rel := cam.Position.Sub(cam.Target)
	rel = mgl64.Rotate3DY(angle).Mul3x1(rel)
	cam.Position = cam.Target.Add(rel)
}

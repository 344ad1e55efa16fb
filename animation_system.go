package solarsystem

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// FrameFunc runs once per unpaused frame with the scaled delta.
type FrameFunc func(sc *SimulationContext, delta float64)

type frameCallback struct {
	name string
	fn   FrameFunc
}

// AnimationSystem advances every body's orbit and spin and writes the result
// into the scene graph.
type AnimationSystem struct {
	Ctx *SimulationContext

	callbacks []frameCallback
}

func (*AnimationSystem) Priority() int { return 50 }

func (*AnimationSystem) Remove(ecs.BasicEntity) {}

// Update converts real seconds into simulation time and advances.
func (as *AnimationSystem) Update(dt float32) {
	if as.Ctx == nil {
		return
	}
	cfg := as.Ctx.Config
	as.Advance(float64(dt) * cfg.Acceleration * cfg.TimeScale)
}

// Advance moves the simulation forward by delta scaled time units. Nothing changes
// while paused.
func (as *AnimationSystem) Advance(delta float64) {
	sc := as.Ctx
	if sc == nil || sc.Graph == nil {
		return
	}
	if sc.Config.Paused {
		sc.Metrics.frame(true)
		return
	}
	for _, b := range sc.bodies {
		b.Step(delta)
		as.write(b)
	}
	for _, cb := range as.callbacks {
		cb.fn(sc, delta)
	}
	sc.Metrics.frame(false)
}

func (as *AnimationSystem) write(b *Body) {
	g := as.Ctx.Graph
	if n := g.Node(b.OrbitNode); n != nil {
		n.Position = b.OrbitPosition()
	}
	spin := g.Node(b.SpinNode)
	if spin == nil {
		return
	}
	switch spin.Role {
	case RolePlanet, RoleSatelliteOrbitGroup, RoleDecoration, RoleGlowShell, RoleStarField, RoleOrbitPivot:
		spin.Rotation = b.SpinRotation()
	case RoleLight:
		log.WithField("body", b.ID).Debug("Spin node is a light, skipping")
	}
}

// OnFrame registers fn to run after the bodies on every unpaused frame, in
// registration order. A name that is already registered is left alone.
func (as *AnimationSystem) OnFrame(name string, fn FrameFunc) bool {
	for _, cb := range as.callbacks {
		if cb.name == name {
			return false
		}
	}
	as.callbacks = append(as.callbacks, frameCallback{name: name, fn: fn})
	return true
}

// RemoveFrame drops the named callback.
func (as *AnimationSystem) RemoveFrame(name string) {
	for i, cb := range as.callbacks {
		if cb.name == name {
			as.callbacks = append(as.callbacks[:i], as.callbacks[i+1:]...)
			return
		}
	}
}

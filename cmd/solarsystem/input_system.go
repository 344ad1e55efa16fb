package main

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/ScottBrooks/solarsystem"
)

// PointerSystem forwards engo mouse state to the picker. Moves are reported when
// the position changes, clicks on button release.
type PointerSystem struct {
	Picker *solarsystem.PickingSystem

	lastX, lastY float32
	down         bool
}

func (*PointerSystem) Remove(ecs.BasicEntity) {}

func (ps *PointerSystem) Update(dt float32) {
	if ps.Picker == nil {
		return
	}
	m := engo.Input.Mouse
	ndc, ok := solarsystem.ClientToNDC(float64(m.X), float64(m.Y), int(engo.WindowWidth()), int(engo.WindowHeight()))
	if !ok {
		return
	}
	if m.X != ps.lastX || m.Y != ps.lastY {
		ps.lastX, ps.lastY = m.X, m.Y
		ps.Picker.PointerMove(ndc)
	}
	if m.Button != engo.MouseButtonLeft {
		return
	}
	switch m.Action {
	case engo.Press:
		ps.down = true
	case engo.Release:
		if ps.down {
			ps.down = false
			ps.Picker.Click(ndc)
		}
	}
}

const (
	minTimeScale = 1.0 / 64
	maxTimeScale = 64
)

// KeySystem handles the simulation keys: Space pauses, Left and Right halve and
// double the time scale within [1/64, 64].
type KeySystem struct {
	Ctx *solarsystem.SimulationContext
}

func (*KeySystem) Remove(ecs.BasicEntity) {}

func (ks *KeySystem) Update(dt float32) {
	if ks.Ctx == nil {
		return
	}
	cfg := ks.Ctx.Config
	changed := false
	if engo.Input.Button("Space").JustPressed() {
		cfg.Paused = !cfg.Paused
		changed = true
	}
	if engo.Input.Button("Left").JustPressed() {
		cfg.TimeScale = stepTimeScale(cfg.TimeScale, false)
		changed = true
	}
	if engo.Input.Button("Right").JustPressed() {
		cfg.TimeScale = stepTimeScale(cfg.TimeScale, true)
		changed = true
	}
	if changed && cfg != ks.Ctx.Config {
		ks.Ctx.ApplyConfig(cfg)
	}
}

// stepTimeScale doubles or halves ts, clamped to [minTimeScale, maxTimeScale].
// A stopped clock (0) restarts at 1 when sped up and stays stopped when slowed.
func stepTimeScale(ts float64, faster bool) float64 {
	switch {
	case faster && ts <= 0:
		return 1
	case faster:
		return math.Min(ts*2, maxTimeScale)
	case ts <= 0:
		return 0
	default:
		return math.Max(ts/2, minTimeScale)
	}
}

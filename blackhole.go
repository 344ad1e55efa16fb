package solarsystem

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

const (
	blackHoleID        = "blackhole"
	blackHoleSpinSpeed = 0.01
)

var BlackHolePosition = mgl64.Vec3{-150, 10, -200}

// AddBlackHole places the black hole with its accretion disk and glow, and hooks
// its spin into the frame callbacks. It returns false if one is already present.
func AddBlackHole(sc *SimulationContext, as *AnimationSystem) (bool, error) {
	g := sc.Graph
	if g.Tagged(blackHoleID) != nil {
		return false, nil
	}

	hole := NewNode(blackHoleID, RolePlanet)
	hole.BodyID = blackHoleID
	hole.Position = BlackHolePosition
	hole.Shape = Shape{Kind: ShapeSphere, Radius: 5}
	hole.Material = NewMaterial(sc.Tier, Hex(0x000000))
	if err := g.Add(0, hole); err != nil {
		return false, fmt.Errorf("adding black hole: %w", err)
	}

	disk := NewNode(blackHoleID+"-disk", RoleDecoration)
	disk.Shape = Shape{Kind: ShapeRing, InnerRadius: 7, Radius: 15}
	disk.Material = &Material{Color: Hex(0xff4500), Opacity: 0.7}
	if err := g.Add(hole.ID(), disk); err != nil {
		return false, fmt.Errorf("adding accretion disk: %w", err)
	}

	glow := NewNode(blackHoleID+"-glow", RoleGlowShell)
	glow.Shape = Shape{Kind: ShapeSphere, Radius: 6}
	glow.Material = &Material{Color: Hex(0xff0000), Opacity: 0.1}
	if err := g.Add(hole.ID(), glow); err != nil {
		return false, fmt.Errorf("adding black hole glow: %w", err)
	}

	id := hole.ID()
	as.OnFrame(blackHoleID, func(sc *SimulationContext, delta float64) {
		if n := sc.Graph.Node(id); n != nil {
			n.Rotation[1] += blackHoleSpinSpeed * delta
		}
	})
	log.WithField("position", BlackHolePosition).Info("Black hole added")
	return true, nil
}

// RemoveBlackHole takes the black hole out of the scene, the frame callbacks and
// the picker's hover and selection state. It returns false if there was none.
func RemoveBlackHole(sc *SimulationContext, as *AnimationSystem, ps *PickingSystem) bool {
	n := sc.Graph.Tagged(blackHoleID)
	if n == nil {
		return false
	}
	if ps != nil {
		ps.Forget(blackHoleID)
	}
	sc.Graph.Remove(n.ID())
	as.RemoveFrame(blackHoleID)
	log.Info("Black hole removed")
	return true
}

// ToggleBlackHole adds the black hole if it is missing and removes it otherwise.
// It reports whether the black hole is present afterwards.
func ToggleBlackHole(sc *SimulationContext, as *AnimationSystem, ps *PickingSystem) (bool, error) {
	if RemoveBlackHole(sc, as, ps) {
		return false, nil
	}
	return AddBlackHole(sc, as)
}

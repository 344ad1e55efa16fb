package main

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ScottBrooks/solarsystem"
)

type projected struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	node uint64
}

// ProjectionSystem keeps one engo circle per spherical node, placed where the 3D
// camera sees it.
type ProjectionSystem struct {
	Ctx *solarsystem.SimulationContext
	R   *common.RenderSystem

	entities map[uint64]*projected
}

func (ps *ProjectionSystem) Remove(ecs.BasicEntity) {}

func (ps *ProjectionSystem) Update(dt float32) {
	if ps.Ctx == nil || ps.Ctx.Camera == nil || ps.R == nil {
		return
	}
	if ps.entities == nil {
		ps.entities = map[uint64]*projected{}
	}
	g := ps.Ctx.Graph
	cam := ps.Ctx.Camera
	seen := map[uint64]bool{}

	g.Walk(func(n *solarsystem.Node) bool {
		if !drawable(n) {
			return true
		}
		seen[n.ID()] = true
		p, ok := ps.entities[n.ID()]
		if !ok {
			p = &projected{BasicEntity: ecs.NewBasic(), node: n.ID()}
			p.RenderComponent = common.RenderComponent{Drawable: common.Circle{}, Scale: engo.Point{X: 1, Y: 1}}
			p.RenderComponent.SetZIndex(1)
			ps.R.Add(&p.BasicEntity, &p.RenderComponent, &p.SpaceComponent)
			ps.entities[n.ID()] = p
		}

		world := g.WorldPosition(n.ID())
		ndc, front := cam.Project(world)
		if !front || math.Abs(ndc[2]) > 1 {
			p.RenderComponent.Hidden = true
			return true
		}
		dist := world.Sub(cam.Position).Len()
		size := screenSize(n, dist, cam)
		x := (ndc[0] + 1) / 2 * float64(cam.Width)
		y := (1 - ndc[1]) / 2 * float64(cam.Height)
		p.SpaceComponent.Width = float32(size)
		p.SpaceComponent.Height = float32(size)
		p.SpaceComponent.SetCenter(engo.Point{X: float32(x), Y: float32(y)})
		p.RenderComponent.Color = shade(n.Material)
		p.RenderComponent.Hidden = false
		// Nearer bodies draw on top.
		p.RenderComponent.SetZIndex(float32(1000 - math.Min(dist, 999)))
		return true
	})

	for id, p := range ps.entities {
		if !seen[id] {
			ps.R.Remove(p.BasicEntity)
			delete(ps.entities, id)
		}
	}
}

func drawable(n *solarsystem.Node) bool {
	switch n.Role {
	case solarsystem.RolePlanet, solarsystem.RoleDecoration:
		return n.Shape.Kind == solarsystem.ShapeSphere && n.Material != nil
	case solarsystem.RoleGlowShell, solarsystem.RoleSatelliteOrbitGroup, solarsystem.RoleLight,
		solarsystem.RoleStarField, solarsystem.RoleOrbitPivot:
	}
	return false
}

func screenSize(n *solarsystem.Node, dist float64, cam *solarsystem.Camera) float64 {
	if dist <= 0 {
		return 0
	}
	scale := math.Max(n.Scale[0], math.Max(n.Scale[1], n.Scale[2]))
	fov := mgl64.DegToRad(cam.FovY)
	px := n.Shape.Radius * scale / (dist * math.Tan(fov/2)) * float64(cam.Height)
	return math.Max(px, 2)
}

func shade(m *solarsystem.Material) color.Color {
	c := m.Color
	if m.HasEmissive {
		add := func(a, b uint8) uint8 {
			if int(a)+int(b) > 255 {
				return 255
			}
			return a + b
		}
		c = color.RGBA{add(c.R, m.Emissive.R), add(c.G, m.Emissive.G), add(c.B, m.Emissive.B), c.A}
	}
	c.A = uint8(math.Round(float64(c.A) * m.Opacity))
	return c
}

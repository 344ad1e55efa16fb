package solarsystem

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

const (
	orbitPathOpacity     = 0.6
	lightIntensityFactor = 1.5
	orbitPathSegments    = 128

	moonDistance     = 2.2
	moonOrbitalSpeed = 0.02
	moonSpinSpeed    = 0.005

	sunSpinSpeed      = 0.003
	starFieldDrift    = 0.0001
	asteroidMinRadius = 32
	asteroidMaxRadius = 37

	sunGlowPulseSpeed  = 0.005
	nebulaParticles    = 500
	nebulaPulseSpeed   = 0.001
	nebulaMaxSpin      = 0.0001
	nebulaOpacity      = 0.7
	sunOuterGlowRadius = 10
	sunInnerGlowRadius = 9
)

type nebulaDef struct {
	position mgl64.Vec3
	color    uint32
	size     float64
}

var nebulae = []nebulaDef{
	{mgl64.Vec3{-150, 30, -200}, 0x8a2be2, 40},
	{mgl64.Vec3{200, -50, -250}, 0x4169e1, 50},
	{mgl64.Vec3{-100, -80, -180}, 0xff6347, 35},
}

// NebulaPosition is the centre of the first nebula, used by the camera preset.
var NebulaPosition = nebulae[0].position

type planetDef struct {
	id        string
	size      float64
	distance  float64
	tilt      float64
	color     uint32
	orbit     uint32
	spinSpeed float64
}

var planets = []planetDef{
	{"mercury", 0.8, 12, 0, 0x888888, 0xaaaaaa, 0.01},
	{"venus", 1.2, 16, 0, 0xe39e1c, 0xffd700, -0.004},
	{"earth", 1.5, 22, 0.1, 0x2233ff, 0x00bfff, 0.01},
	{"mars", 1, 28, 0.05, 0xff3300, 0xff4500, 0.01},
	{"jupiter", 4, 40, 0.05, 0xd8ca9d, 0xff8c00, 0.01},
	{"saturn", 3.5, 55, 0.1, 0xf0e2a1, 0xffff00, 0.01},
	{"uranus", 2.5, 70, 0.1, 0xa6fff8, 0x00ffff, -0.006},
	{"neptune", 2.3, 85, 0.1, 0x0000ff, 0x0000ff, 0.01},
}

// BuildSolarSystem populates sc with the sun and its glow, planets, moon, rings,
// asteroid belt, orbit paths, nebulae and star field, and registers the per-frame
// decoration callbacks on as.
func BuildSolarSystem(sc *SimulationContext, as *AnimationSystem) error {
	rng := rand.New(rand.NewSource(sc.Config.Seed))
	g := sc.Graph

	sun := NewNode("sun", RolePlanet)
	sun.BodyID = "sun"
	sun.Shape = Shape{Kind: ShapeSphere, Radius: 8}
	sun.Material = NewMaterial(sc.Tier, Hex(0xffff00))
	if sun.Material.HasEmissive {
		sun.Material.Emissive = Hex(0xffff00)
	}
	if err := g.Add(0, sun); err != nil {
		return fmt.Errorf("adding sun: %w", err)
	}
	switch sc.Tier {
	case TierFull:
		if err := addSunGlow(sc, as, sun); err != nil {
			return fmt.Errorf("adding sun glow: %w", err)
		}
	case TierBasic:
	}
	sunBody := NewBody("sun", 0, sunSpinSpeed)
	sunBody.OrbitNode, sunBody.SpinNode = sun.ID(), sun.ID()
	sc.AddBody(sunBody)

	light := NewNode("sunlight", RoleLight)
	light.Intensity = sc.Config.LightIntensity * lightIntensityFactor
	if err := g.Add(0, light); err != nil {
		return fmt.Errorf("adding light: %w", err)
	}
	sc.light = light.ID()

	for _, p := range planets {
		if err := addPlanet(sc, p); err != nil {
			return fmt.Errorf("adding %s: %w", p.id, err)
		}
	}
	if err := addMoon(sc, "earth"); err != nil {
		return fmt.Errorf("adding moon: %w", err)
	}
	if err := addRing(sc, "saturn", 4, 7); err != nil {
		return fmt.Errorf("adding saturn ring: %w", err)
	}
	if err := addAsteroidBelt(sc, rng, sc.Config.AsteroidCount); err != nil {
		return fmt.Errorf("adding asteroid belt: %w", err)
	}

	if err := addNebulae(sc, as, rng); err != nil {
		return fmt.Errorf("adding nebulae: %w", err)
	}

	stars := NewNode("stars", RoleStarField)
	stars.Material = &Material{Color: Hex(0xffffff), Opacity: 0.8}
	if err := g.Add(0, stars); err != nil {
		return fmt.Errorf("adding star field: %w", err)
	}
	sc.starField = stars.ID()
	sc.rebuildStarField()

	as.OnFrame("starfield-drift", func(sc *SimulationContext, delta float64) {
		if n := sc.Graph.Node(sc.starField); n != nil {
			n.Rotation[1] += starFieldDrift * delta
		}
	})

	for _, b := range sc.bodies {
		place(g, b)
	}
	log.WithFields(log.Fields{
		"nodes":  g.Len(),
		"bodies": len(sc.bodies),
		"tier":   sc.Tier,
	}).Info("Solar system built")
	return nil
}

func place(g *Graph, b *Body) {
	if n := g.Node(b.OrbitNode); n != nil {
		n.Position = b.OrbitPosition()
	}
	if n := g.Node(b.SpinNode); n != nil {
		n.Rotation = b.SpinRotation()
	}
}

func addPlanet(sc *SimulationContext, p planetDef) error {
	g := sc.Graph
	pivot := NewNode(p.id+"-orbit", RoleOrbitPivot)
	if err := g.Add(0, pivot); err != nil {
		return err
	}

	mesh := NewNode(p.id, RolePlanet)
	mesh.BodyID = p.id
	mesh.Shape = Shape{Kind: ShapeSphere, Radius: p.size}
	mesh.Material = NewMaterial(sc.Tier, Hex(p.color))
	if err := g.Add(pivot.ID(), mesh); err != nil {
		return err
	}

	switch sc.Tier {
	case TierFull:
		glow := NewNode(p.id+"-atmosphere", RoleGlowShell)
		glow.Shape = Shape{Kind: ShapeSphere, Radius: p.size * 1.1}
		glow.Material = &Material{Color: Hex(p.color), Opacity: 0.2}
		if err := g.Add(mesh.ID(), glow); err != nil {
			return err
		}
	case TierBasic:
	}

	path := NewNode(p.id+"-path", RoleDecoration)
	path.Material = &Material{Color: Hex(p.orbit), Opacity: orbitPathOpacity * sc.Config.OrbitVisibility}
	path.Points = circle(p.distance, orbitPathSegments)
	if err := g.Add(0, path); err != nil {
		return err
	}
	sc.orbitPaths = append(sc.orbitPaths, path.ID())

	b := NewBody(p.id, p.distance, p.spinSpeed)
	b.AxialTilt = p.tilt
	b.OrbitNode = pivot.ID()
	b.SpinNode = mesh.ID()
	sc.AddBody(b)
	return nil
}

func addMoon(sc *SimulationContext, planet string) error {
	parent := sc.Body(planet)
	if parent == nil {
		return fmt.Errorf("no body %q", planet)
	}
	g := sc.Graph
	group := NewNode(planet+"-moon-system", RoleSatelliteOrbitGroup)
	if err := g.Add(parent.OrbitNode, group); err != nil {
		return err
	}
	moon := NewNode("moon", RolePlanet)
	moon.BodyID = "moon"
	moon.Shape = Shape{Kind: ShapeSphere, Radius: 0.4}
	moon.Material = NewMaterial(sc.Tier, Hex(0xcccccc))
	if err := g.Add(group.ID(), moon); err != nil {
		return err
	}
	b := NewBody("moon", moonDistance, moonSpinSpeed)
	b.OrbitalSpeed = moonOrbitalSpeed
	b.OrbitNode, b.SpinNode = moon.ID(), moon.ID()
	sc.AddBody(b)
	return nil
}

func addRing(sc *SimulationContext, planet string, inner, outer float64) error {
	parent := sc.Body(planet)
	if parent == nil {
		return fmt.Errorf("no body %q", planet)
	}
	ring := NewNode(planet+"-ring", RoleDecoration)
	ring.Shape = Shape{Kind: ShapeRing, InnerRadius: inner, Radius: outer}
	ring.Material = &Material{Color: Hex(0xffefd5), Opacity: 0.7}
	return sc.Graph.Add(parent.SpinNode, ring)
}

func addAsteroidBelt(sc *SimulationContext, rng *rand.Rand, count int) error {
	palette := []color.RGBA{Hex(0x8b8989), Hex(0x9f9f9f), Hex(0xa8a8a8)}
	for i := 0; i < count; i++ {
		radius := asteroidMinRadius + rng.Float64()*(asteroidMaxRadius-asteroidMinRadius)
		n := NewNode(fmt.Sprintf("asteroid-%d", i), RoleDecoration)
		n.Shape = Shape{Kind: ShapeSphere, Radius: 0.2}
		scale := 0.5 + rng.Float64()*0.5
		n.Scale = mgl64.Vec3{scale, scale, scale}
		n.Material = NewMaterial(sc.Tier, palette[rng.Intn(len(palette))])
		if err := sc.Graph.Add(0, n); err != nil {
			return err
		}

		b := NewBody(n.Name, radius, 0.01+rng.Float64()*0.05)
		b.OrbitalAngle = rng.Float64() * 2 * math.Pi
		b.HeightOffset = (rng.Float64() - 0.5) * 2
		b.AxialTilt = rng.Float64() * 2 * math.Pi
		b.SpinAxis = mgl64.Vec3{0.2, 1, 0.3}
		b.OrbitNode, b.SpinNode = n.ID(), n.ID()
		sc.AddBody(b)
	}
	return nil
}

// addSunGlow puts two translucent shells around the sun whose size and opacity
// pulse with 0.7+0.3*sin(phase).
func addSunGlow(sc *SimulationContext, as *AnimationSystem, sun *Node) error {
	outer := NewNode("sun-glow-outer", RoleGlowShell)
	outer.Shape = Shape{Kind: ShapeSphere, Radius: sunOuterGlowRadius}
	outer.Material = &Material{Color: Hex(0xffddaa), Opacity: 0.3}
	if err := sc.Graph.Add(sun.ID(), outer); err != nil {
		return err
	}
	inner := NewNode("sun-glow-inner", RoleGlowShell)
	inner.Shape = Shape{Kind: ShapeSphere, Radius: sunInnerGlowRadius}
	inner.Material = &Material{Color: Hex(0xffaa33), Opacity: 0.5}
	if err := sc.Graph.Add(sun.ID(), inner); err != nil {
		return err
	}

	outerID, innerID := outer.ID(), inner.ID()
	phase := 0.0
	as.OnFrame("sun-glow", func(sc *SimulationContext, delta float64) {
		phase += sunGlowPulseSpeed * delta
		pulse := SunGlowPulse(phase)
		if n := sc.Graph.Node(outerID); n != nil {
			n.Scale = mgl64.Vec3{pulse, pulse, pulse}
			n.Material.Opacity = 0.3 * pulse
		}
		if n := sc.Graph.Node(innerID); n != nil {
			s := pulse * 0.95
			n.Scale = mgl64.Vec3{s, s, s}
			n.Material.Opacity = 0.5 * pulse
		}
	})
	return nil
}

// SunGlowPulse is the sun glow scale factor for a pulse phase.
func SunGlowPulse(phase float64) float64 {
	return 0.7 + 0.3*math.Sin(phase)
}

// NebulaPulse is the nebula scale factor for a pulse phase.
func NebulaPulse(phase float64) float64 {
	return 0.8 + 0.2*math.Sin(phase)
}

type nebulaState struct {
	node  uint64
	spin  float64
	phase float64
}

// addNebulae scatters particle clouds far outside the planets. Each turns slowly
// about its own centre and breathes in size.
func addNebulae(sc *SimulationContext, as *AnimationSystem, rng *rand.Rand) error {
	states := make([]*nebulaState, 0, len(nebulae))
	for i, def := range nebulae {
		n := NewNode(fmt.Sprintf("nebula-%d", i), RoleDecoration)
		n.Position = def.position
		n.Material = &Material{Color: Hex(def.color), Opacity: nebulaOpacity}
		n.Points = cloudPositions(rng, nebulaParticles, def.size)
		if err := sc.Graph.Add(0, n); err != nil {
			return err
		}
		sc.nebulae = append(sc.nebulae, n.ID())
		states = append(states, &nebulaState{
			node:  n.ID(),
			spin:  (rng.Float64() - 0.5) * nebulaMaxSpin,
			phase: rng.Float64() * 2 * math.Pi,
		})
	}
	for _, st := range states {
		if n := sc.Graph.Node(st.node); n != nil {
			p := NebulaPulse(st.phase)
			n.Scale = mgl64.Vec3{p, p, p}
		}
	}

	as.OnFrame("nebula-pulse", func(sc *SimulationContext, delta float64) {
		for _, st := range states {
			n := sc.Graph.Node(st.node)
			if n == nil {
				continue
			}
			st.phase += nebulaPulseSpeed * delta
			p := NebulaPulse(st.phase)
			n.Rotation[1] += st.spin * delta
			n.Scale = mgl64.Vec3{p, p, p}
		}
	})
	return nil
}

// cloudPositions scatters count points within size of the origin.
func cloudPositions(rng *rand.Rand, count int, size float64) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, count)
	for i := range pts {
		r := size * rng.Float64()
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi
		pts[i] = mgl64.Vec3{
			r * math.Sin(phi) * math.Cos(theta),
			r * math.Sin(phi) * math.Sin(theta),
			r * math.Cos(phi),
		}
	}
	return pts
}

func circle(radius float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts = append(pts, mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)})
	}
	return pts
}

// starPositions scatters count stars in a shell between 300 and 1000 units.
func starPositions(rng *rand.Rand, count int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, count)
	for i := range pts {
		r := 300 + rng.Float64()*700
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		pts[i] = mgl64.Vec3{
			r * math.Sin(phi) * math.Cos(theta),
			r * math.Sin(phi) * math.Sin(theta),
			r * math.Cos(phi),
		}
	}
	return pts
}

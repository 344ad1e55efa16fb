package solarsystem

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAnimated returns a context holding one body whose orbit and spin go to the
// same node.
func newAnimated(t *testing.T, b *Body) (*SimulationContext, *AnimationSystem, *Node) {
	t.Helper()
	sc := NewSimulationContext(DefaultConfig(), TierFull)
	n := NewNode(b.ID, RolePlanet)
	n.BodyID = b.ID
	require.NoError(t, sc.Graph.Add(0, n))
	b.OrbitNode, b.SpinNode = n.ID(), n.ID()
	sc.AddBody(b)
	return sc, &AnimationSystem{Ctx: sc}, n
}

func TestOrbitStep(t *testing.T) {
	earth := NewBody("earth", 22, 0.01)
	assert.InDelta(t, 0.004264, earth.OrbitalSpeed, 1e-6)

	_, as, n := newAnimated(t, earth)
	as.Advance(10)

	assert.InDelta(t, 0.04264, earth.OrbitalAngle, 1e-5)
	assert.InDelta(t, 21.98, n.Position.X(), 0.005)
	assert.InDelta(t, 0.938, n.Position.Z(), 0.001)
	assert.Equal(t, 0.0, n.Position.Y())
}

func TestRetrogradeSpin(t *testing.T) {
	venus := NewBody("venus", 16, -0.004)
	_, as, n := newAnimated(t, venus)

	as.Advance(1)

	assert.Less(t, venus.RotationAngle, 0.0)
	assert.InDelta(t, -0.004, venus.RotationAngle, 1e-12)
	assert.InDelta(t, -0.004, n.Rotation.Y(), 1e-12)
}

func TestStationaryBody(t *testing.T) {
	sun := NewBody("sun", 0, 0.003)
	assert.Equal(t, 0.0, sun.OrbitalSpeed)

	_, as, n := newAnimated(t, sun)
	for i := 0; i < 10; i++ {
		as.Advance(3)
	}
	assert.Equal(t, 0.0, sun.OrbitalAngle)
	assert.Equal(t, mgl64.Vec3{}, n.Position)
	assert.InDelta(t, 0.09, sun.RotationAngle, 1e-12)
}

func TestPauseInvariant(t *testing.T) {
	for _, delta := range []float64{0, 0.5, 10, 1e6} {
		t.Run(fmt.Sprintf("delta %v", delta), func(t *testing.T) {
			b := NewBody("mars", 28, 0.01)
			b.OrbitalAngle, b.RotationAngle = 1.25, -0.5
			sc, as, n := newAnimated(t, b)
			n.Position = mgl64.Vec3{1, 2, 3}
			called := false
			as.OnFrame("marker", func(*SimulationContext, float64) { called = true })

			sc.Config.Paused = true
			as.Advance(delta)

			assert.Equal(t, 1.25, b.OrbitalAngle)
			assert.Equal(t, -0.5, b.RotationAngle)
			assert.Equal(t, mgl64.Vec3{1, 2, 3}, n.Position, "no graph writes while paused")
			assert.False(t, called)
		})
	}
}

func TestChunkingIndependence(t *testing.T) {
	var tests = []struct {
		name   string
		deltas []float64
	}{
		{"single", []float64{8}},
		{"halves", []float64{4, 4}},
		{"uneven", []float64{0.1, 2.9, 5}},
		{"many", []float64{1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody("jupiter", 40, 0.01)
			_, as, _ := newAnimated(t, b)
			sum := 0.0
			for _, d := range tt.deltas {
				as.Advance(d)
				sum += d
			}
			assert.InDelta(t, b.OrbitalSpeed*sum, b.OrbitalAngle, 1e-12)
			assert.InDelta(t, 0.01*sum, b.RotationAngle, 1e-12)
		})
	}
}

func TestPauseThenResume(t *testing.T) {
	b := NewBody("saturn", 55, 0.01)
	sc, as, _ := newAnimated(t, b)

	sc.Config.Paused = true
	for i := 0; i < 5; i++ {
		as.Advance(2)
	}
	assert.Equal(t, 0.0, b.OrbitalAngle)

	sc.Config.Paused = false
	as.Advance(2)
	assert.InDelta(t, b.OrbitalSpeed*2, b.OrbitalAngle, 1e-15)
}

func TestUpdateScalesDelta(t *testing.T) {
	b := NewBody("earth", 22, 0.01)
	sc, as, _ := newAnimated(t, b)
	sc.Config.Acceleration = 10
	sc.Config.TimeScale = 2.5

	as.Update(0.5)

	assert.InDelta(t, b.OrbitalSpeed*12.5, b.OrbitalAngle, 1e-12)
}

func TestInclinedOrbit(t *testing.T) {
	b := NewBody("tilted", 10, 0)
	b.Inclination = math.Pi / 6
	b.HeightOffset = 0.5
	b.OrbitalAngle = math.Pi / 2

	p := b.OrbitPosition()

	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.InDelta(t, 10*math.Sin(math.Pi/6)+0.5, p.Y(), 1e-9)
	assert.InDelta(t, 10*math.Cos(math.Pi/6), p.Z(), 1e-9)
}

func TestSatelliteInheritsPosition(t *testing.T) {
	sc := NewSimulationContext(DefaultConfig(), TierBasic)
	as := &AnimationSystem{Ctx: sc}

	pivot := NewNode("earth-orbit", RoleOrbitPivot)
	require.NoError(t, sc.Graph.Add(0, pivot))
	earth := NewBody("earth", 22, 0.01)
	earth.OrbitNode = pivot.ID()
	sc.AddBody(earth)

	group := NewNode("earth-moon-system", RoleSatelliteOrbitGroup)
	require.NoError(t, sc.Graph.Add(pivot.ID(), group))
	moonNode := NewNode("moon", RolePlanet)
	require.NoError(t, sc.Graph.Add(group.ID(), moonNode))
	moon := NewBody("moon", 2.2, 0.005)
	moon.OrbitalSpeed = 0.02
	moon.OrbitNode, moon.SpinNode = moonNode.ID(), moonNode.ID()
	sc.AddBody(moon)

	as.Advance(7)

	earthPos := sc.Graph.WorldPosition(pivot.ID())
	moonPos := sc.Graph.WorldPosition(moonNode.ID())
	assert.InDelta(t, 2.2, moonPos.Sub(earthPos).Len(), 1e-9)
	assert.InDelta(t, 0.14, moon.OrbitalAngle, 1e-12)
}

func TestFrameCallbacks(t *testing.T) {
	sc, as, _ := newAnimated(t, NewBody("earth", 22, 0.01))
	var order []string
	assert.True(t, as.OnFrame("first", func(_ *SimulationContext, d float64) { order = append(order, fmt.Sprintf("first %v", d)) }))
	assert.True(t, as.OnFrame("second", func(_ *SimulationContext, d float64) { order = append(order, "second") }))
	assert.False(t, as.OnFrame("first", func(*SimulationContext, float64) { order = append(order, "dup") }))

	as.Advance(1.5)
	assert.Equal(t, []string{"first 1.5", "second"}, order)

	as.RemoveFrame("first")
	order = nil
	as.Advance(1)
	assert.Equal(t, []string{"second"}, order)

	sc.Config.Paused = true
	order = nil
	as.Advance(1)
	assert.Empty(t, order)
}

func TestAnimationMetrics(t *testing.T) {
	sc, as, _ := newAnimated(t, NewBody("earth", 22, 0.01))
	sc.Metrics = NewMetrics(prometheus.NewRegistry())

	as.Advance(1)
	as.Advance(1)
	sc.Config.Paused = true
	as.Advance(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(sc.Metrics.Frames))
	assert.Equal(t, 1.0, testutil.ToFloat64(sc.Metrics.PausedFrames))
}

func TestAdvanceWithoutContext(t *testing.T) {
	as := &AnimationSystem{}
	assert.NotPanics(t, func() {
		as.Advance(1)
		as.Update(1)
	})
}

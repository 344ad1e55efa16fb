package solarsystem

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicInOut(t *testing.T) {
	var tests = []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CubicInOut(tt.in), 1e-12, "CubicInOut(%v)", tt.in)
	}
}

func TestFocusOnSelect(t *testing.T) {
	sc, _ := buildScene(t, TierFull, nil)
	fs := &FocusSystem{Ctx: sc}
	fs.Listen()

	ps := &PickingSystem{Ctx: sc}
	ps.Click(mgl64.Vec2{0, 0})
	require.Equal(t, "sun", sc.Interaction.Selected)
	require.True(t, fs.Busy())

	start := sc.Camera.Position
	fs.Update(FocusDuration / 2)
	assert.True(t, fs.Busy())
	assert.NotEqual(t, start, sc.Camera.Position)

	fs.Update(FocusDuration)
	assert.False(t, fs.Busy())
	assert.InDelta(t, 0, sc.Camera.Target.Len(), 1e-9)
	assert.InDelta(t, 40, sc.Camera.Position.Len(), 1e-9, "five sun radii away")
}

func TestFocusKeepsBodiesStill(t *testing.T) {
	sc, _ := buildScene(t, TierFull, nil)
	fs := &FocusSystem{Ctx: sc}
	earth := sc.Body("earth")
	before := *earth

	fs.Focus("earth")
	for i := 0; i < 10; i++ {
		fs.Update(0.2)
	}
	assert.Equal(t, before, *earth)

	pos := sc.Graph.WorldPosition(sc.Graph.Tagged("earth").ID())
	assert.InDelta(t, 0, sc.Camera.Target.Sub(pos).Len(), 1e-9)
	assert.InDelta(t, 7.5, sc.Camera.Position.Sub(pos).Len(), 1e-9)
}

func TestFocusUnknownBody(t *testing.T) {
	sc, _ := buildScene(t, TierFull, nil)
	fs := &FocusSystem{Ctx: sc}
	fs.Focus("pluto")
	assert.False(t, fs.Busy())

	(&FocusSystem{}).Focus("earth")
}

func TestPresets(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	fs := &FocusSystem{Ctx: sc}
	assert.Equal(t, DefaultCameraPosition, sc.Camera.Position, "camera starts at the reset position")

	var tests = []struct {
		preset string
		pos    mgl64.Vec3
		target mgl64.Vec3
	}{
		{"solar", mgl64.Vec3{0, 30, 90}, mgl64.Vec3{}},
		{"reset", mgl64.Vec3{0, 30, 90}, mgl64.Vec3{}},
		{"nebula", mgl64.Vec3{-130, 40, -140}, mgl64.Vec3{-150, 30, -200}},
		{"blackhole", mgl64.Vec3{-150, 15, -170}, BlackHolePosition},
		{"nowhere", mgl64.Vec3{-150, 15, -170}, BlackHolePosition},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			fs.Focus("earth")
			fs.Preset(tt.preset, as)
			if tt.preset != "nowhere" {
				assert.False(t, fs.Busy())
			}
			fs.tween = nil
			assert.Equal(t, tt.pos, sc.Camera.Position)
			assert.Equal(t, tt.target, sc.Camera.Target)
		})
	}
	assert.NotNil(t, sc.Graph.Tagged(blackHoleID))
}

func TestAutoRotate(t *testing.T) {
	sc, _ := buildScene(t, TierFull, nil)
	fs := &FocusSystem{Ctx: sc}
	start := sc.Camera.Position

	fs.Update(1)
	assert.Equal(t, start, sc.Camera.Position, "off by default")

	assert.True(t, fs.ToggleAutoRotate())
	fs.Update(7.5)
	pos := sc.Camera.Position
	assert.InDelta(t, start.Y(), pos.Y(), 1e-9)
	assert.InDelta(t, start.Sub(sc.Camera.Target).Len(), pos.Sub(sc.Camera.Target).Len(), 1e-9)
	// A quarter turn takes 7.5s.
	assert.InDelta(t, 0, pos.Z(), 1e-9)
	assert.InDelta(t, 90, math.Abs(pos.X()), 1e-9)

	for i := 0; i < 3; i++ {
		fs.Update(7.5)
	}
	assert.True(t, start.ApproxEqualThreshold(sc.Camera.Position, 1e-9), "full turn in 30s")

	fs.Focus("earth")
	fs.Update(0.5)
	assert.True(t, fs.Busy(), "focus moves take priority")

	assert.False(t, fs.ToggleAutoRotate())
	fs.Update(1)
	fs.Update(1)
	assert.False(t, fs.Busy())
	settled := sc.Camera.Position
	fs.Update(1)
	assert.Equal(t, settled, sc.Camera.Position)
}

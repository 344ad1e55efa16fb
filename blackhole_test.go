package solarsystem

import (
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBlackHole(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	nodes := sc.Graph.Len()

	added, err := AddBlackHole(sc, as)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, nodes+3, sc.Graph.Len())

	added, err = AddBlackHole(sc, as)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, nodes+3, sc.Graph.Len())

	hole := sc.Graph.Tagged(blackHoleID)
	as.Advance(10)
	assert.InDelta(t, blackHoleSpinSpeed*10, hole.Rotation.Y(), 1e-12)

	sc.Config.Paused = true
	as.Advance(10)
	assert.InDelta(t, blackHoleSpinSpeed*10, hole.Rotation.Y(), 1e-12)
}

func TestSelectBlackHoleDisk(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	_, err := AddBlackHole(sc, as)
	require.NoError(t, err)

	lookAtDisk(sc)

	pres := &recordingPresenter{}
	ps := &PickingSystem{Ctx: sc, Presenter: pres}
	ps.Click(mgl64.Vec2{0, 0})

	assert.Equal(t, blackHoleID, sc.Interaction.Selected)
	require.NotNil(t, pres.last())
	assert.Equal(t, "Black hole", pres.last().Name)
	assert.Nil(t, pres.last().Diameter)
}

func TestRemoveBlackHole(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	nodes := sc.Graph.Len()
	assert.False(t, RemoveBlackHole(sc, as, nil))

	_, err := AddBlackHole(sc, as)
	require.NoError(t, err)

	assert.True(t, RemoveBlackHole(sc, as, nil))
	assert.Nil(t, sc.Graph.Tagged(blackHoleID))
	assert.Equal(t, nodes, sc.Graph.Len())
	assert.NotPanics(t, func() { as.Advance(1) })

	added, err := AddBlackHole(sc, as)
	require.NoError(t, err)
	assert.True(t, added)
}

// lookAtDisk points the camera down at the accretion disk.
func lookAtDisk(sc *SimulationContext) {
	point := BlackHolePosition.Add(mgl64.Vec3{0, 0, 10})
	sc.Camera.Position = point.Add(mgl64.Vec3{0, 20, 1})
	sc.Camera.Target = point
}

func TestReselectAfterRemoval(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	pres := &recordingPresenter{}
	cursor := &recordingCursor{}
	ps := &PickingSystem{Ctx: sc, Presenter: pres, Cursor: cursor}
	selects, unselects, leaves := 0, 0, 0
	sc.Mailbox.Listen(SelectMessage{}.Type(), func(engo.Message) { selects++ })
	sc.Mailbox.Listen(UnselectMessage{}.Type(), func(engo.Message) { unselects++ })
	sc.Mailbox.Listen(HoverLeaveMessage{}.Type(), func(engo.Message) { leaves++ })

	_, err := AddBlackHole(sc, as)
	require.NoError(t, err)
	lookAtDisk(sc)
	ps.PointerMove(mgl64.Vec2{0, 0})
	ps.Click(mgl64.Vec2{0, 0})
	require.Equal(t, InteractionState{Hovered: blackHoleID, Selected: blackHoleID}, sc.Interaction)

	require.True(t, RemoveBlackHole(sc, as, ps))
	assert.Equal(t, InteractionState{}, sc.Interaction)
	assert.Equal(t, 1, unselects)
	assert.Equal(t, 1, leaves)
	assert.Nil(t, pres.last())
	assert.Equal(t, false, cursor.states[len(cursor.states)-1])
	assert.NotContains(t, ps.originals, blackHoleID)

	_, err = AddBlackHole(sc, as)
	require.NoError(t, err)
	orig := *sc.Graph.Tagged(blackHoleID).Material
	ps.Click(mgl64.Vec2{0, 0})

	assert.Equal(t, blackHoleID, sc.Interaction.Selected)
	assert.Equal(t, 2, selects)
	require.NotNil(t, pres.last())
	assert.Equal(t, "Black hole", pres.last().Name)
	assert.Equal(t, selectEmissive, sc.Graph.Tagged(blackHoleID).Material.Emissive)

	ps.Click(mgl64.Vec2{-0.99, -0.99})
	assert.Equal(t, orig, *sc.Graph.Tagged(blackHoleID).Material)
}

func TestRemoveKeepsOtherSelection(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	ps := &PickingSystem{Ctx: sc}
	ps.Click(mgl64.Vec2{0, 0})
	require.Equal(t, "sun", sc.Interaction.Selected)

	_, err := AddBlackHole(sc, as)
	require.NoError(t, err)
	RemoveBlackHole(sc, as, ps)
	assert.Equal(t, "sun", sc.Interaction.Selected)
}

func TestToggleBlackHole(t *testing.T) {
	sc, as := buildScene(t, TierFull, nil)
	ps := &PickingSystem{Ctx: sc}

	on, err := ToggleBlackHole(sc, as, ps)
	require.NoError(t, err)
	assert.True(t, on)
	assert.NotNil(t, sc.Graph.Tagged(blackHoleID))

	on, err = ToggleBlackHole(sc, as, ps)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Nil(t, sc.Graph.Tagged(blackHoleID))
}

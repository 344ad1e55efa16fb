package solarsystem

import (
	"github.com/EngoEngine/engo"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

// PickingSystem turns pointer events into hover and selection changes. It is driven
// by the host's input handling, not by the frame loop.
type PickingSystem struct {
	Ctx       *SimulationContext
	Presenter InfoPresenter
	Cursor    CursorSetter

	// originals holds the material of every highlighted body as it was before the
	// first highlight.
	originals map[string]Material
}

func (ps *PickingSystem) ready() bool {
	return ps.Ctx != nil && ps.Ctx.Graph != nil && ps.Ctx.Camera != nil
}

// Pick returns the body owning the nearest node hit by a ray through ndc.
func (ps *PickingSystem) Pick(ndc mgl64.Vec2) (string, bool) {
	if !ps.ready() {
		return "", false
	}
	g := ps.Ctx.Graph
	ray := ps.Ctx.Camera.RayFromNDC(ndc)

	var (
		best  string
		bestT float64
		found bool
	)
	g.Walk(func(n *Node) bool {
		if n.Shape.Kind == ShapeNone {
			return true
		}
		owner, ok := g.Owner(n.ID())
		if !ok {
			return true
		}
		t, hit := intersectShape(ray, n.Shape, g.WorldMatrix(n.ID()))
		// Strictly nearer only, equal distances keep traversal order.
		if hit && (!found || t < bestT) {
			best, bestT, found = owner, t, true
		}
		return true
	})
	return best, found
}

// PointerMove updates the hovered body.
func (ps *PickingSystem) PointerMove(ndc mgl64.Vec2) {
	if !ps.ready() {
		log.Debug("Pointer move before scene is ready")
		return
	}
	hit, ok := ps.Pick(ndc)
	ps.Ctx.Metrics.pick("move", ok)
	st := &ps.Ctx.Interaction

	if ok {
		if hit == st.Hovered {
			return
		}
		prev := st.Hovered
		st.Hovered = hit
		if prev != "" {
			ps.leave(prev)
		}
		ps.refresh(hit)
		ps.dispatch(HoverEnterMessage{BodyID: hit})
		ps.Ctx.Metrics.transition("enter")
		ps.setCursor(true)
		return
	}
	if st.Hovered != "" {
		prev := st.Hovered
		st.Hovered = ""
		ps.leave(prev)
		ps.setCursor(false)
	}
}

func (ps *PickingSystem) leave(id string) {
	ps.refresh(id)
	ps.dispatch(HoverLeaveMessage{BodyID: id})
	ps.Ctx.Metrics.transition("leave")
}

// Click selects the body under ndc, or clears the selection over empty space.
// Clicking the selected body again does nothing.
func (ps *PickingSystem) Click(ndc mgl64.Vec2) {
	if !ps.ready() {
		log.Debug("Click before scene is ready")
		return
	}
	hit, ok := ps.Pick(ndc)
	ps.Ctx.Metrics.pick("click", ok)
	st := &ps.Ctx.Interaction

	if ok {
		if hit == st.Selected {
			return
		}
		prev := st.Selected
		st.Selected = hit
		if prev != "" {
			ps.unselect(prev)
		}
		ps.refresh(hit)
		ps.dispatch(SelectMessage{BodyID: hit})
		ps.Ctx.Metrics.transition("select")
		rec, found := ps.Ctx.Registry.Get(hit)
		if !found {
			rec = &BodyRecord{Name: hit}
		}
		ps.present(rec)
		log.WithField("body", hit).Info("Selected")
		return
	}
	if st.Selected != "" {
		prev := st.Selected
		st.Selected = ""
		ps.unselect(prev)
	}
}

// Forget drops every reference to a body that left the scene. A hovered body is
// left and a selected one unselected, without touching its now missing material.
func (ps *PickingSystem) Forget(id string) {
	if ps.Ctx == nil || id == "" {
		return
	}
	delete(ps.originals, id)
	st := &ps.Ctx.Interaction
	if st.Hovered == id {
		st.Hovered = ""
		ps.dispatch(HoverLeaveMessage{BodyID: id})
		ps.Ctx.Metrics.transition("leave")
		ps.setCursor(false)
	}
	if st.Selected == id {
		st.Selected = ""
		ps.dispatch(UnselectMessage{BodyID: id})
		ps.Ctx.Metrics.transition("unselect")
		ps.present(nil)
	}
}

// TouchStart treats the first touch point as a click.
func (ps *PickingSystem) TouchStart(touches []mgl64.Vec2) {
	if len(touches) == 0 {
		return
	}
	ps.Click(touches[0])
}

func (ps *PickingSystem) unselect(id string) {
	ps.refresh(id)
	ps.dispatch(UnselectMessage{BodyID: id})
	ps.Ctx.Metrics.transition("unselect")
	ps.present(nil)
}

// refresh sets the material of body id from the interaction state. Highlights are
// always derived from the cached original so repeated transitions never drift.
func (ps *PickingSystem) refresh(id string) {
	n := ps.Ctx.Graph.Tagged(id)
	if n == nil || n.Material == nil {
		return
	}
	if ps.originals == nil {
		ps.originals = map[string]Material{}
	}
	st := ps.Ctx.Interaction
	orig, cached := ps.originals[id]

	if st.Selected != id && st.Hovered != id {
		if cached {
			*n.Material = orig
			delete(ps.originals, id)
		}
		return
	}
	if !cached {
		orig = *n.Material
		ps.originals[id] = orig
	}
	m := orig
	if st.Selected == id {
		m.highlight(selectEmissive, selectLighten)
	} else {
		m.highlight(hoverEmissive, hoverLighten)
	}
	*n.Material = m
}

func (ps *PickingSystem) dispatch(msg engo.Message) {
	if ps.Ctx.Mailbox != nil {
		ps.Ctx.Mailbox.Dispatch(msg)
	}
}

func (ps *PickingSystem) present(rec *BodyRecord) {
	if ps.Presenter != nil {
		ps.Presenter.Present(rec)
	}
}

func (ps *PickingSystem) setCursor(on bool) {
	if ps.Cursor != nil {
		ps.Cursor.SetInteractive(on)
	}
}

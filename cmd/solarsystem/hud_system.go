package main

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/ScottBrooks/solarsystem"
)

const infoLines = 9

type HudElement struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
	Offset engo.Point
}

// InfoPanel shows the selected body's record in the top left corner.
type InfoPanel struct {
	Pos  engo.Point
	Font *common.Font

	Entities []*HudElement
	lines    []string
	dirty    bool
}

func (ip *InfoPanel) Setup(rs *common.RenderSystem, font *common.Font, pos engo.Point) {
	ip.Pos = pos
	ip.Font = font
	for i := 0; i < infoLines; i++ {
		e := &HudElement{
			BasicEntity: ecs.NewBasic(),
			RenderComponent: common.RenderComponent{
				Drawable: common.Text{Font: font, Text: " "},
				Scale:    engo.Point{X: 1, Y: 1},
			},
			Offset: engo.Point{X: 0, Y: float32(i) * float32(font.Size+6)},
		}
		e.RenderComponent.SetZIndex(100)
		e.SpaceComponent.Position = e.Offset
		e.SpaceComponent.Position.Add(pos)
		rs.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
		ip.Entities = append(ip.Entities, e)
	}
	ip.dirty = true
}

// Present implements solarsystem.InfoPresenter.
func (ip *InfoPanel) Present(rec *solarsystem.BodyRecord) {
	ip.lines = rec.Lines()
	ip.dirty = true
}

func (*InfoPanel) Remove(ecs.BasicEntity) {}

func (ip *InfoPanel) Update(dt float32) {
	if !ip.dirty || ip.Font == nil {
		return
	}
	for i, e := range ip.Entities {
		text := " "
		if i < len(ip.lines) {
			text = ip.lines[i]
		}
		e.RenderComponent.Drawable = common.Text{Font: ip.Font, Text: text}
		e.RenderComponent.Hidden = i >= len(ip.lines)
	}
	ip.dirty = false
}

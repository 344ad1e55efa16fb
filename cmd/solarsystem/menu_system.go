package main

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	log "github.com/sirupsen/logrus"
)

type selectable struct {
	*HudElement
	exec func()
}

// MenuSystem is a keyboard driven list of camera presets: Up and Down move, Enter runs.
type MenuSystem struct {
	rs   *common.RenderSystem
	font *common.Font
	pos  engo.Point

	selectables []selectable
	current     int
}

func (ms *MenuSystem) Setup(rs *common.RenderSystem, font *common.Font, pos engo.Point) {
	ms.rs, ms.font, ms.pos = rs, font, pos
}

func (*MenuSystem) Remove(ecs.BasicEntity) {}

func (ms *MenuSystem) Update(dt float32) {
	if len(ms.selectables) == 0 {
		return
	}
	ms.selectables[ms.current].RenderComponent.Color = color.RGBA{255, 255, 255, 255}
	if engo.Input.Button("Up").JustReleased() {
		ms.current--
	}
	if engo.Input.Button("Down").JustReleased() {
		ms.current++
	}
	if ms.current < 0 {
		ms.current = len(ms.selectables) - 1
	}
	if ms.current >= len(ms.selectables) {
		ms.current = 0
	}
	ms.selectables[ms.current].RenderComponent.Color = color.RGBA{255, 0, 0, 255}

	if engo.Input.Button("Enter").JustReleased() {
		log.WithField("item", ms.current).Debug("Menu item chosen")
		ms.selectables[ms.current].exec()
	}
}

func (ms *MenuSystem) Add(label string, exec func()) {
	e := &HudElement{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{Font: ms.font, Text: label},
			Scale:    engo.Point{X: 1, Y: 1},
		},
		Offset: engo.Point{X: 0, Y: float32(len(ms.selectables)) * float32(ms.font.Size+8)},
	}
	e.RenderComponent.SetZIndex(100)
	e.SpaceComponent.Position = e.Offset
	e.SpaceComponent.Position.Add(ms.pos)
	ms.rs.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	ms.selectables = append(ms.selectables, selectable{e, exec})
}

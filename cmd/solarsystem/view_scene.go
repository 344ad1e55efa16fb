package main

import (
	"bytes"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ScottBrooks/solarsystem"
)

// ViewScene draws the simulation with engo's 2D renderer by projecting bodies
// through the 3D camera.
type ViewScene struct {
	*solarsystem.SolarSystemScene

	R       common.RenderSystem
	Project ProjectionSystem
	Pointer PointerSystem
	Info    InfoPanel
	Menu    MenuSystem
	Keys    KeySystem

	Font *common.Font
}

func (vs *ViewScene) Preload() {
	if err := engo.Files.LoadReaderData("go.ttf", bytes.NewReader(goregular.TTF)); err != nil {
		log.Fatalf("Error loading font: %v", err)
	}
}

func (vs *ViewScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	engo.Input.RegisterButton("Up", engo.KeyArrowUp)
	engo.Input.RegisterButton("Down", engo.KeyArrowDown)
	engo.Input.RegisterButton("Left", engo.KeyArrowLeft)
	engo.Input.RegisterButton("Right", engo.KeyArrowRight)
	engo.Input.RegisterButton("Enter", engo.KeyEnter)
	engo.Input.RegisterButton("Space", engo.KeySpace)

	common.SetBackground(color.Black)

	vs.Font = &common.Font{
		URL:  "go.ttf",
		FG:   color.White,
		Size: 16,
	}
	if err := vs.Font.CreatePreloaded(); err != nil {
		log.Fatalf("Error creating font: %v", err)
	}

	vs.SolarSystemScene.Setup(u)

	w.AddSystem(&vs.R)

	vs.Project = ProjectionSystem{Ctx: vs.Ctx, R: &vs.R}
	w.AddSystem(&vs.Project)

	vs.Pointer = PointerSystem{Picker: &vs.Picker}
	w.AddSystem(&vs.Pointer)

	vs.Info.Setup(&vs.R, vs.Font, engo.Point{X: 16, Y: 16})
	w.AddSystem(&vs.Info)

	vs.Keys = KeySystem{Ctx: vs.Ctx}
	w.AddSystem(&vs.Keys)

	vs.Menu.Setup(&vs.R, vs.Font, engo.Point{X: 16, Y: float32(worldHeight) - 180})
	vs.Menu.Add("Reset camera", func() { vs.Focus.Preset("reset", &vs.Anim) })
	vs.Menu.Add("Solar system", func() { vs.Focus.Preset("solar", &vs.Anim) })
	vs.Menu.Add("Nebula", func() { vs.Focus.Preset("nebula", &vs.Anim) })
	vs.Menu.Add("Black hole", func() { vs.Focus.Preset("blackhole", &vs.Anim) })
	vs.Menu.Add("Toggle black hole", func() {
		if _, err := solarsystem.ToggleBlackHole(vs.Ctx, &vs.Anim, &vs.Picker); err != nil {
			log.WithError(err).Warn("Unable to toggle black hole")
		}
	})
	vs.Menu.Add("Auto rotate", func() { vs.Focus.ToggleAutoRotate() })
	w.AddSystem(&vs.Menu)
}

func (*ViewScene) Type() string { return "SolarSystemView" }

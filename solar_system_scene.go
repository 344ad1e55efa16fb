package solarsystem

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	log "github.com/sirupsen/logrus"
)

// SolarSystemScene is the engo scene running the simulation. Build it before
// handing it to engo.Run; Setup only wires the systems into the world.
type SolarSystemScene struct {
	Config Config
	Caps   Capabilities
	Width  int
	Height int

	Presenter     InfoPresenter
	Cursor        CursorSetter
	Metrics       *Metrics
	ConfigUpdates <-chan Config

	Ctx     *SimulationContext
	Anim    AnimationSystem
	Picker  PickingSystem
	Focus   FocusSystem
	Configs ConfigSystem
}

// Build detects the rendering tier and constructs the scene graph.
func (ss *SolarSystemScene) Build() error {
	if err := ss.Config.Validate(); err != nil {
		return err
	}
	tier, err := DetectTier(ss.Caps, ss.Config.Tier)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"tier": tier, "caps": fmt.Sprintf("%+v", ss.Caps)}).Info("Rendering tier detected")

	ctx := NewSimulationContext(ss.Config, tier)
	ctx.Metrics = ss.Metrics
	ctx.Camera = NewCamera(ss.Width, ss.Height)
	ctx.Metrics.timeScale(ss.Config.TimeScale)

	ss.Ctx = ctx
	ss.Anim = AnimationSystem{Ctx: ctx}
	ss.Picker = PickingSystem{Ctx: ctx, Presenter: ss.Presenter, Cursor: ss.Cursor}
	ss.Focus = FocusSystem{Ctx: ctx}
	ss.Configs = ConfigSystem{Ctx: ctx, Updates: ss.ConfigUpdates}

	if err := BuildSolarSystem(ctx, &ss.Anim); err != nil {
		return fmt.Errorf("building solar system: %w", err)
	}
	if ss.Presenter != nil {
		ss.Presenter.Present(nil)
	}
	return nil
}

func (*SolarSystemScene) Preload() {}

func (ss *SolarSystemScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)
	if ss.Ctx == nil {
		if err := ss.Build(); err != nil {
			log.WithError(err).Fatal("Unable to build the solar system")
		}
	}
	if engo.Mailbox != nil {
		ss.Ctx.Mailbox = engo.Mailbox
	}
	ss.Focus.Listen()

	w.AddSystem(&ss.Configs)
	w.AddSystem(&ss.Anim)
	w.AddSystem(&ss.Focus)

	ss.Ctx.Mailbox.Listen(engo.WindowResizeMessage{}.Type(), func(msg engo.Message) {
		rm, ok := msg.(engo.WindowResizeMessage)
		if !ok {
			return
		}
		ss.Ctx.Resize(rm.NewWidth, rm.NewHeight)
	})
}

func (*SolarSystemScene) Type() string { return "SolarSystem" }

package solarsystem

import (
	"math/rand"

	"github.com/EngoEngine/engo"
	log "github.com/sirupsen/logrus"
)

// InteractionState tracks what the pointer is over and what was clicked. Empty
// means none. The two are independent.
type InteractionState struct {
	Hovered  string
	Selected string
}

// SimulationContext owns everything the animation and picking systems share.
type SimulationContext struct {
	Graph       *Graph
	Camera      *Camera
	Registry    *Registry
	Config      Config
	Tier        RenderingTier
	Interaction InteractionState

	Mailbox *engo.MessageManager
	Metrics *Metrics

	bodies []*Body
	byID   map[string]*Body

	light      uint64
	starField  uint64
	orbitPaths []uint64
	nebulae    []uint64
}

func NewSimulationContext(cfg Config, tier RenderingTier) *SimulationContext {
	return &SimulationContext{
		Graph:    NewGraph(),
		Registry: DefaultRegistry(),
		Config:   cfg,
		Tier:     tier,
		Mailbox:  &engo.MessageManager{},
		byID:     map[string]*Body{},
	}
}

// AddBody registers b. A body with the same id replaces the previous one.
func (sc *SimulationContext) AddBody(b *Body) {
	if old, ok := sc.byID[b.ID]; ok {
		for i, o := range sc.bodies {
			if o == old {
				sc.bodies[i] = b
			}
		}
	} else {
		sc.bodies = append(sc.bodies, b)
	}
	sc.byID[b.ID] = b
}

func (sc *SimulationContext) Body(id string) *Body {
	return sc.byID[id]
}

// Bodies returns the bodies in registration order.
func (sc *SimulationContext) Bodies() []*Body {
	return sc.bodies
}

// Resize recomputes the camera projection from the viewport size. It only depends
// on its arguments.
func (sc *SimulationContext) Resize(width, height int) {
	if sc.Camera == nil {
		return
	}
	sc.Camera.Resize(width, height)
}

// ApplyConfig switches to cfg. Invalid configs are logged and dropped.
func (sc *SimulationContext) ApplyConfig(cfg Config) {
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Warn("Rejecting config")
		return
	}
	prev := sc.Config
	sc.Config = cfg
	sc.Metrics.timeScale(cfg.TimeScale)

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != prev.LogLevel {
		log.SetLevel(lvl)
	}
	if cfg.OrbitVisibility != prev.OrbitVisibility {
		sc.applyOrbitVisibility()
	}
	if cfg.LightIntensity != prev.LightIntensity {
		sc.applyLightIntensity()
	}
	if cfg.StarCount != prev.StarCount || cfg.Seed != prev.Seed {
		sc.rebuildStarField()
	}
	if cfg.Tier != prev.Tier || cfg.AsteroidCount != prev.AsteroidCount {
		log.WithFields(log.Fields{
			"tier":      cfg.Tier,
			"asteroids": cfg.AsteroidCount,
		}).Info("Tier and asteroid count take effect after a restart")
	}
	log.WithFields(log.Fields{
		"timeScale": cfg.TimeScale,
		"paused":    cfg.Paused,
		"stars":     cfg.StarCount,
	}).Info("Config applied")
	if sc.Mailbox != nil {
		sc.Mailbox.Dispatch(ConfigAppliedMessage{Config: cfg})
	}
}

func (sc *SimulationContext) applyOrbitVisibility() {
	for _, id := range sc.orbitPaths {
		if n := sc.Graph.Node(id); n != nil && n.Material != nil {
			n.Material.Opacity = orbitPathOpacity * sc.Config.OrbitVisibility
		}
	}
}

func (sc *SimulationContext) applyLightIntensity() {
	if n := sc.Graph.Node(sc.light); n != nil {
		n.Intensity = sc.Config.LightIntensity * lightIntensityFactor
	}
}

func (sc *SimulationContext) rebuildStarField() {
	n := sc.Graph.Node(sc.starField)
	if n == nil {
		return
	}
	n.Points = starPositions(rand.New(rand.NewSource(sc.Config.Seed)), sc.Config.StarCount)
}

package solarsystem

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts frames and pointer activity. A nil *Metrics records nothing.
type Metrics struct {
	Frames        prometheus.Counter
	PausedFrames  prometheus.Counter
	Picks         *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	TimeScale     prometheus.Gauge
	ConfigReloads *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solarsystem",
			Name:      "frames_total",
			Help:      "Animation updates that advanced the simulation.",
		}),
		PausedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solarsystem",
			Name:      "paused_frames_total",
			Help:      "Animation updates skipped while paused.",
		}),
		Picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solarsystem",
			Name:      "picks_total",
			Help:      "Ray casts by pointer event kind and outcome.",
		}, []string{"event", "result"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solarsystem",
			Name:      "interaction_transitions_total",
			Help:      "Hover and selection transitions.",
		}, []string{"transition"}),
		TimeScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solarsystem",
			Name:      "time_scale",
			Help:      "Current simulation time scale.",
		}),
		ConfigReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solarsystem",
			Name:      "config_reloads_total",
			Help:      "Config file reloads by outcome.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Frames, m.PausedFrames, m.Picks, m.Transitions, m.TimeScale, m.ConfigReloads)
	}
	return m
}

func (m *Metrics) frame(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.PausedFrames.Inc()
		return
	}
	m.Frames.Inc()
}

func (m *Metrics) pick(event string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.Picks.WithLabelValues(event, result).Inc()
}

func (m *Metrics) transition(name string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(name).Inc()
}

func (m *Metrics) timeScale(v float64) {
	if m == nil {
		return
	}
	m.TimeScale.Set(v)
}

func (m *Metrics) reload(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.ConfigReloads.WithLabelValues("ok").Inc()
		return
	}
	m.ConfigReloads.WithLabelValues("error").Inc()
}

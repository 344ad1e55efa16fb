package solarsystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/EngoEngine/ecs"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// ConfigWatcher reloads a config file when it changes on disk. Parsed configs are
// only handed over through Updates, the watcher never touches the simulation.
type ConfigWatcher struct {
	Path    string
	Updates chan Config

	metrics *Metrics
}

func NewConfigWatcher(path string, m *Metrics) *ConfigWatcher {
	return &ConfigWatcher{Path: path, Updates: make(chan Config, 1), metrics: m}
}

// Run blocks until ctx is done. The parent directory is watched so editors that
// replace the file on save keep working.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(cw.Path)); err != nil {
		return fmt.Errorf("watching %s: %w", cw.Path, err)
	}
	target := filepath.Clean(cw.Path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cw.reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Config watcher error")
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.Path)
	if err != nil {
		cw.metrics.reload(false)
		log.WithError(err).Warn("Ignoring config reload")
		return
	}
	cw.metrics.reload(true)
	// Keep only the newest pending config.
	select {
	case <-cw.Updates:
	default:
	}
	cw.Updates <- cfg
}

// ConfigSystem applies pending config reloads on the frame loop.
type ConfigSystem struct {
	Ctx     *SimulationContext
	Updates <-chan Config
}

func (*ConfigSystem) Priority() int { return 100 }

func (*ConfigSystem) Remove(ecs.BasicEntity) {}

func (cs *ConfigSystem) Update(dt float32) {
	if cs.Ctx == nil {
		return
	}
	select {
	case cfg := <-cs.Updates:
		cs.Ctx.ApplyConfig(cfg)
	default:
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"runtime"

	"github.com/EngoEngine/engo"
	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ScottBrooks/solarsystem"
)

var (
	worldWidth  = 1024
	worldHeight = 768
)

func main() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(colorable.NewColorableStdout())

	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	headless := flag.Bool("headless", false, "run without a window")
	metricsAddr := flag.String("metrics-addr", "", "serve prometheus metrics on this address")
	timeScale := flag.Float64("time-scale", 1, "simulation speed multiplier")
	paused := flag.Bool("paused", false, "start paused")
	stars := flag.Int("stars", 2000, "number of background stars")
	tier := flag.String("tier", "auto", "rendering tier: auto, full or basic")
	logLevel := flag.String("log-level", "info", "log level")
	blackHole := flag.Bool("blackhole", false, "add the black hole at startup")
	flag.Parse()

	cfg := solarsystem.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = solarsystem.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	// Flags given explicitly win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time-scale":
			cfg.TimeScale = *timeScale
		case "paused":
			cfg.Paused = *paused
		case "stars":
			cfg.StarCount = *stars
		case "tier":
			cfg.Tier = *tier
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Bad log level: %v", err)
	}
	log.SetLevel(lvl)

	useGraphics := !*headless && (os.Getenv("DISPLAY") != "" || runtime.GOOS == "windows" || runtime.GOOS == "darwin")

	reg := prometheus.NewRegistry()
	metrics := solarsystem.NewMetrics(reg)
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var updates chan solarsystem.Config
	if *configPath != "" && *watch {
		cw := solarsystem.NewConfigWatcher(*configPath, metrics)
		updates = cw.Updates
		go func() {
			if err := cw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Warn("Config watcher stopped")
			}
		}()
	}

	ss := &solarsystem.SolarSystemScene{
		Config:        cfg,
		Caps:          solarsystem.Capabilities{StandardMaterials: useGraphics, PostProcessing: useGraphics},
		Width:         worldWidth,
		Height:        worldHeight,
		Metrics:       metrics,
		ConfigUpdates: updates,
	}

	opts := engo.RunOptions{
		Title:          "Solar System",
		Width:          worldWidth,
		Height:         worldHeight,
		StandardInputs: true,
		HeadlessMode:   !useGraphics,
		FPSLimit:       60,
	}

	if !useGraphics {
		ss.Presenter = solarsystem.LogPresenter{}
		if err := ss.Build(); err != nil {
			log.Fatalf("Error building scene: %v", err)
		}
		addBlackHole(ss, *blackHole)
		engo.Run(opts, ss)
		return
	}

	vs := &ViewScene{SolarSystemScene: ss}
	ss.Presenter = &vs.Info
	ss.Cursor = engoCursor{}
	if err := ss.Build(); err != nil {
		log.Fatalf("Error building scene: %v", err)
	}
	addBlackHole(ss, *blackHole)
	engo.Run(opts, vs)
}

func addBlackHole(ss *solarsystem.SolarSystemScene, on bool) {
	if !on {
		return
	}
	if _, err := solarsystem.AddBlackHole(ss.Ctx, &ss.Anim); err != nil {
		log.Fatalf("Error adding black hole: %v", err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.WithField("addr", addr).Info("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Error("Metrics server stopped")
	}
}

type engoCursor struct{}

func (engoCursor) SetInteractive(on bool) {
	if on {
		engo.SetCursor(engo.CursorHand)
		return
	}
	engo.SetCursor(engo.CursorArrow)
}

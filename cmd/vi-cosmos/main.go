package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-cosmos/audio"
	"github.com/lixenwraith/vi-cosmos/config"
	"github.com/lixenwraith/vi-cosmos/cosmos"
	"github.com/lixenwraith/vi-cosmos/metrics"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/render"
)

var (
	configFlag    = flag.String("config", "", "Config file (.toml, .yaml)")
	envFlag       = flag.String("env", ".env", "Env file with COSMOS_* overrides")
	seedFlag      = flag.Int64("seed", 0, "Universe seed, overrides config")
	starsFlag     = flag.Int("stars", 0, "Universe star count, overrides config")
	autopilotFlag = flag.Bool("autopilot", false, "Start with autopilot enabled")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/vi-cosmos.log")
	metricsFlag   = flag.String("metrics", "", "Serve prometheus metrics on this address, e.g. :9090")
	muteFlag      = flag.Bool("mute", false, "Disable audio cues")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-COSMOS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	observers := []cosmos.Observer{}

	if *metricsFlag != "" {
		srv, collector, err := serveMetrics(*metricsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Metrics setup failed: %v\n", err)
			os.Exit(1)
		}
		defer srv.Close()
		observers = append(observers, collector)
	}

	cue := audio.NewCue()
	if !*muteFlag {
		if err := cue.Start(); err != nil {
			log.Printf("Audio start failed: %v (continuing without audio)", err)
		} else {
			defer cue.Stop()
		}
	}
	observers = append(observers, cue)

	applyColorMode(*colorModeFlag)
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen)
	sim, err := cosmos.New(cfg, renderer, observers...)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}

	a := &app{sim: sim, renderer: renderer, screen: screen, cue: cue}
	a.run()
}

// loadConfig layers file, env file and environment, then applies explicitly set flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "stars":
			cfg.StarCount = *starsFlag
		case "autopilot":
			cfg.Autopilot = *autopilotFlag
		}
	})
	return cfg, cfg.Validate()
}

// serveMetrics registers a collector on a private registry and serves it in the background
func serveMetrics(addr string) (*http.Server, *metrics.Collector, error) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics: serving on %s/metrics", addr)
	return srv, collector, nil
}

// applyColorMode steers tcell color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

// app is the frame loop: input, step, draw
type app struct {
	sim      *cosmos.Simulation
	renderer *render.TerminalRenderer
	screen   tcell.Screen
	cue      *audio.Cue
	muted    bool
}

func (a *app) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			a.sim.Step(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

func (a *app) draw() {
	var sel *cosmos.Summary
	if s, ok := a.sim.SelectedTargetSummary(); ok {
		sel = &s
	}
	a.renderer.Draw(a.sim.Status(), sel)
}

// handleEvent applies one terminal event, false requests exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return true
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.renderer.Orbit(-1)
	case tcell.KeyRight:
		a.renderer.Orbit(1)
	case tcell.KeyUp:
		a.renderer.Zoom(1)
	case tcell.KeyDown:
		a.renderer.Zoom(-1)
	case tcell.KeyEnter:
		a.travel()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.sim.GoBack()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		a.renderer.Orbit(-1)
	case 'l':
		a.renderer.Orbit(1)
	case 'k', '+', '=':
		a.renderer.Zoom(1)
	case 'j', '-':
		a.renderer.Zoom(-1)
	case '[':
		a.cycle(-1)
	case ']':
		a.cycle(1)
	case 'a':
		a.sim.SetAutopilotEnabled(!a.sim.AutopilotEnabled())
	case 'm':
		a.muted = !a.muted
		a.cue.SetMuted(a.muted)
	case 'r':
		if err := a.sim.SetSeed(a.sim.Config().Seed + 1); err != nil {
			log.Printf("reseed: %v", err)
		}
	}
	return true
}

// cycle moves the selection through the current population, wrapping at both ends
func (a *app) cycle(dir int) {
	n := a.sim.Status().Bodies
	if n == 0 {
		return
	}
	next := 0
	if s, ok := a.sim.SelectedTargetSummary(); ok {
		next = ((s.Index+dir)%n + n) % n
	} else if dir < 0 {
		next = n - 1
	}
	a.sim.Select(next)
}

// travel descends into the selection, or selects the first body when nothing is selected
func (a *app) travel() {
	s, ok := a.sim.SelectedTargetSummary()
	if !ok {
		a.sim.Select(0)
		return
	}
	a.sim.TravelTo(s.Index)
}

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/health-snake/audio"
	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/device"
	"github.com/lixenwraith/health-snake/engine"
	"github.com/lixenwraith/health-snake/input"
	"github.com/lixenwraith/health-snake/render"
	"github.com/lixenwraith/health-snake/status"
)

// app is the terminal front end: event polling, intent dispatch and frame rendering
type app struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	keys     *input.KeyTable
	control  *input.Controller
	sound    *audio.SoundManager
	metrics  *status.Registry

	// probe is the latest terminal check; bootProbe is the check at startup
	probe     device.Result
	bootProbe device.Result

	loadingUntil time.Time
	started      time.Time
	debug        bool
}

func newApp(screen tcell.Screen, session *engine.Session, keys *input.KeyTable, sound *audio.SoundManager, metrics *status.Registry, probe device.Result) *app {
	now := time.Now()
	a := &app{
		screen:    screen,
		session:   session,
		renderer:  render.NewRenderer(),
		keys:      keys,
		control:   input.NewController(session),
		sound:     sound,
		metrics:   metrics,
		probe:     probe,
		bootProbe: probe,
		started:   now,
	}
	// Loading screen is only shown on a compatible terminal
	if probe.Compatible {
		a.loadingUntil = now.Add(constants.LoadingDuration)
	}
	a.control.OnToggleMute = func() {
		a.sound.SetMuted(!a.sound.Muted())
	}
	a.control.OnToggleDebug = func() {
		a.debug = !a.debug
	}
	return a
}

// run polls terminal events and renders frames until quit or ctx is cancelled
func (a *app) run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.InputQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.handle(ev) {
				return nil
			}
		case <-frameTicker.C:
			a.renderer.Render(a.screen, a.view(time.Now()))
		}
	}
}

// handle applies one terminal event, returning true on quit
func (a *app) handle(ev tcell.Event) bool {
	in := a.keys.Resolve(ev)
	switch {
	case in.Type == input.IntentResize:
		a.resize()
		return false
	case in.Type == input.IntentQuit:
		return true
	case a.loading(time.Now()):
		return false
	case !a.probe.Compatible && in.Type != input.IntentToggleMute && in.Type != input.IntentToggleDebug:
		return false
	}
	return a.control.Apply(in)
}

// resize re-probes the terminal and pauses a running game that no longer fits
func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.probe = device.CheckTerminal(cols, rows, a.session.Snapshot().Grid)
	a.session.SetCompatible(a.probe.Compatible)
	if !a.probe.Compatible && a.session.State() == engine.StateRunning {
		a.session.TogglePause()
	}
	slog.Debug("terminal resized", "cols", cols, "rows", rows, "compatible", a.probe.Compatible)
	a.screen.Sync()
}

func (a *app) loading(now time.Time) bool {
	return now.Before(a.loadingUntil)
}

func (a *app) view(now time.Time) render.View {
	v := render.View{
		Snapshot: a.session.Snapshot(),
		Guide:    catalog.Guide(),
		Muted:    a.sound.Muted(),
		Debug:    a.debug,
	}
	if a.debug {
		v.Metrics = a.metrics.Export()
	}

	switch {
	case !a.probe.Compatible && !a.bootProbe.Compatible:
		v.Screen = render.ScreenIncompatible
		v.Reason = a.probe.Reason
	case !a.probe.Compatible:
		v.Screen = render.ScreenTooSmall
		v.Reason = a.probe.Reason
	case a.loading(now):
		v.Screen = render.ScreenLoading
		elapsed := now.Sub(a.started)
		idx := int(elapsed/constants.LoadingFactInterval) % len(catalog.LoadingFacts)
		v.LoadingFact = catalog.LoadingFacts[idx]
		v.LoadingProgress = float64(elapsed) / float64(constants.LoadingDuration)
	default:
		v.Screen = render.ScreenGame
	}
	return v
}

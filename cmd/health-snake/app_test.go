package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/health-snake/audio"
	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/device"
	"github.com/lixenwraith/health-snake/engine"
	"github.com/lixenwraith/health-snake/input"
	"github.com/lixenwraith/health-snake/render"
	"github.com/lixenwraith/health-snake/status"
)

func newTestApp(t *testing.T, cols, rows int) (*app, tcell.SimulationScreen) {
	t.Helper()
	return newTestAppWithGrid(t, cols, rows, core.Grid{Width: 30, Height: 30})
}

func newTestAppWithGrid(t *testing.T, cols, rows int, grid core.Grid) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	probe := device.CheckTerminal(cols, rows, grid)
	metrics := status.NewRegistry()
	session := engine.NewSession(engine.Options{
		Grid:         grid,
		Seed:         7,
		Compatible:   probe.Compatible,
		Difficulty:   engine.DifficultyMedium,
		TimeProvider: engine.NewMockTimeProvider(time.Unix(0, 0)),
		Metrics:      metrics,
	})
	t.Cleanup(session.Stop)

	a := newApp(screen, session, input.DefaultKeyTable(), audio.NewSoundManager(), metrics, probe)
	return a, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppLoadingScreen(t *testing.T) {
	a, _ := newTestApp(t, 120, 40)

	v := a.view(a.started.Add(time.Second))
	if v.Screen != render.ScreenLoading {
		t.Fatalf("screen = %v, want loading", v.Screen)
	}
	if v.LoadingFact == "" || v.LoadingProgress <= 0 || v.LoadingProgress >= 1 {
		t.Errorf("loading view = %q %.2f", v.LoadingFact, v.LoadingProgress)
	}

	// Input other than quit is ignored while loading
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.session.State() != engine.StateIdle {
		t.Errorf("state = %v, want Idle during loading", a.session.State())
	}

	v = a.view(a.started.Add(constants.LoadingDuration))
	if v.Screen != render.ScreenGame {
		t.Errorf("screen = %v after loading, want game", v.Screen)
	}
}

func TestAppStartAndQuit(t *testing.T) {
	a, _ := newTestApp(t, 120, 40)
	a.loadingUntil = time.Time{}

	if a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("enter must not quit")
	}
	if a.session.State() != engine.StateRunning {
		t.Fatalf("state = %v, want Running", a.session.State())
	}

	a.handle(key(' '))
	if a.session.State() != engine.StatePaused {
		t.Errorf("state = %v, want Paused", a.session.State())
	}

	a.handle(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone))
	if v := a.view(time.Now()); !v.Debug || v.Metrics == nil {
		t.Error("F2 should enable the debug view with metrics")
	}

	a.handle(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !a.sound.Muted() {
		t.Error("Ctrl-S should mute")
	}

	if !a.handle(key('q')) {
		t.Error("q should quit")
	}
}

func TestAppIncompatibleTerminal(t *testing.T) {
	a, _ := newTestApp(t, 40, 20)

	v := a.view(time.Now())
	if v.Screen != render.ScreenIncompatible || v.Reason == "" {
		t.Fatalf("view = %v %q, want incompatible with reason", v.Screen, v.Reason)
	}

	// Loading is skipped and start is refused
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.session.State() != engine.StateIdle {
		t.Errorf("state = %v, want Idle", a.session.State())
	}
	if !a.handle(key('q')) {
		t.Error("q should quit from the incompatible screen")
	}
}

func TestAppResizePausesGame(t *testing.T) {
	a, screen := newTestApp(t, 120, 40)
	a.loadingUntil = time.Time{}
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	screen.SetSize(50, 20)
	a.handle(tcell.NewEventResize(50, 20))
	if a.session.State() != engine.StatePaused {
		t.Errorf("state = %v, want Paused after shrinking", a.session.State())
	}
	if v := a.view(time.Now()); v.Screen != render.ScreenTooSmall {
		t.Errorf("screen = %v, want too small", v.Screen)
	}

	screen.SetSize(120, 40)
	a.handle(tcell.NewEventResize(120, 40))
	if v := a.view(time.Now()); v.Screen != render.ScreenGame {
		t.Errorf("screen = %v, want game after growing", v.Screen)
	}
	if !a.session.Compatible() {
		t.Error("session should be compatible again")
	}
}

func TestAppRunQuits(t *testing.T) {
	a, screen := newTestApp(t, 120, 40)

	done := make(chan error, 1)
	go func() { done <- a.run(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	if err := screen.PostEvent(key('q')); err != nil {
		t.Fatalf("post: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after q")
	}
}

func TestAppRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, 120, 40)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestAppLargeGridNeedsLargerTerminal(t *testing.T) {
	grid := core.Grid{Width: 60, Height: 60}
	a, screen := newTestAppWithGrid(t, 120, 40, grid)

	if v := a.view(time.Now()); v.Screen != render.ScreenIncompatible {
		t.Fatalf("screen = %v, want incompatible for 60x60 on 120x40", v.Screen)
	}
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.session.State() != engine.StateIdle {
		t.Errorf("state = %v, want Idle", a.session.State())
	}

	cols, rows := device.TerminalSize(grid)
	screen.SetSize(cols, rows)
	a.handle(tcell.NewEventResize(cols, rows))
	if !a.session.Compatible() {
		t.Fatal("session should be compatible once the terminal fits the grid")
	}
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.session.State() != engine.StateRunning {
		t.Errorf("state = %v, want Running", a.session.State())
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/health-snake/audio"
	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/config"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/device"
	"github.com/lixenwraith/health-snake/engine"
	"github.com/lixenwraith/health-snake/input"
	"github.com/lixenwraith/health-snake/report"
	"github.com/lixenwraith/health-snake/spectate"
	"github.com/lixenwraith/health-snake/status"
)

var version = "dev"

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	envFlag    = flag.String("env", ".env", "Path to an optional .env file")
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	flag.Parse()

	cfg, err := config.Load(config.Options{ConfigFile: *configFlag, EnvFile: *envFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "health-snake: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	reporter := newCrashReporter(cfg)
	defer reporter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := report.NewRecorder()
	if err := run(ctx, cfg, reporter, rec); err != nil {
		slog.Error("run failed", "error", err)
		reporter.Error(err)
		fmt.Fprintf(os.Stderr, "health-snake: %v\n", err)
		return 1
	}

	// Terminal is restored at this point
	rec.Finish()
	fmt.Print(report.Render(rec.Entries()))
	return 0
}

func run(ctx context.Context, cfg *config.Config, reporter *crashReporter, rec *report.Recorder) error {
	facts := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return err
		}
		facts = loaded
	}

	overrides, err := input.LoadKeyConfig(cfg.Keymap.Runes, cfg.Keymap.Keys)
	if err != nil {
		return errors.Wrap(err, "keymap")
	}
	keys := input.DefaultKeyTable().Merge(overrides)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	// Restore the terminal before anything is printed for a crash
	crash := func(r any) {
		screen.Fini()
		stack := debug.Stack()
		reporter.Panic(r, stack)
		fmt.Fprintf(os.Stderr, "\n\x1b[31mHEALTH-SNAKE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	metrics := status.NewRegistry()
	metrics.Strings.Get("app.version").Store(version)

	grid := cfg.Grid()
	cols, rows := screen.Size()
	probe := device.CheckTerminal(cols, rows, grid)
	if !probe.Compatible {
		slog.Warn("terminal not compatible", "reason", probe.Reason)
	}

	session := engine.NewSession(engine.Options{
		Grid:       grid,
		Facts:      facts,
		Seed:       cfg.Seed,
		Compatible: probe.Compatible,
		Difficulty: cfg.Level(),
		Metrics:    metrics,
	})
	defer session.Stop()
	session.Subscribe(rec.Listener())

	sound := audio.NewSoundManager()
	feedback := audio.NewFeedback(sound)
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
			feedback.SetEnabled(false)
		} else {
			defer sound.Cleanup()
		}
	} else {
		feedback.SetEnabled(false)
	}
	session.Subscribe(feedback.Handle)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.SpectateAddr != "" {
		srv := spectate.NewServer(cfg.SpectateAddr, session, facts, metrics)
		session.Subscribe(srv.Listener())
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	ui := newApp(screen, session, keys, sound, metrics, probe)
	g.Go(func() error {
		// Quitting the UI ends the spectator server too
		defer cancel()
		return ui.run(gctx)
	})

	return g.Wait()
}

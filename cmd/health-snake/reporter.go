package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rollbar/rollbar-go"

	"github.com/lixenwraith/health-snake/config"
)

// crashReporter forwards panics and fatal errors to rollbar when a token is configured
type crashReporter struct {
	enabled bool
}

func newCrashReporter(cfg *config.Config) *crashReporter {
	if cfg.RollbarToken == "" {
		rollbar.SetEnabled(false)
		return &crashReporter{}
	}
	rollbar.SetToken(cfg.RollbarToken)
	rollbar.SetEnvironment(cfg.Environment)
	rollbar.SetCodeVersion(version)
	if host, err := os.Hostname(); err == nil {
		rollbar.SetServerHost(host)
	}
	rollbar.SetEnabled(true)
	slog.Info("crash reporting enabled", "environment", cfg.Environment)
	return &crashReporter{enabled: true}
}

// Panic reports a recovered panic and blocks until it is delivered
func (c *crashReporter) Panic(r any, stack []byte) {
	if !c.enabled {
		return
	}
	rollbar.Critical(fmt.Errorf("panic: %v", r), map[string]interface{}{
		"stack": string(stack),
	})
	rollbar.Wait()
}

// Error reports a fatal error returned from the run loop
func (c *crashReporter) Error(err error) {
	if !c.enabled || err == nil {
		return
	}
	rollbar.Error(err)
}

// Close flushes queued reports
func (c *crashReporter) Close() {
	if c.enabled {
		rollbar.Wait()
	}
}

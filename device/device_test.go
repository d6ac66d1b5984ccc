package device

import (
	"strings"
	"testing"

	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
)

const (
	uaDesktop       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	uaIPhone        = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"
	uaAndroidPhone  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"
	uaAndroidTablet = "Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"
	uaIPad          = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		probe      Probe
		indicators int
		compatible bool
	}{
		{"desktop", Probe{UserAgent: uaDesktop, Width: 1920, Height: 1080}, 0, true},
		{"desktop touch laptop", Probe{UserAgent: uaDesktop, Touch: true, Width: 1440}, 1, true},
		{"small desktop window", Probe{UserAgent: uaDesktop, Width: 800}, 1, true},
		{"iphone", Probe{UserAgent: uaIPhone, Touch: true, Width: 390}, 3, false},
		{"android phone", Probe{UserAgent: uaAndroidPhone, Touch: true, Width: 412}, 3, false},
		{"android tablet", Probe{UserAgent: uaAndroidTablet, Touch: true, Width: 1280}, 3, false},
		{"ipad", Probe{UserAgent: uaIPad, Touch: true, Width: 1024}, 4, false},
		{"touch small screen", Probe{UserAgent: uaDesktop, Touch: true, Width: 1024}, 2, false},
		{"unknown width", Probe{UserAgent: uaDesktop}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Check(tt.probe)
			if r.Indicators != tt.indicators {
				t.Errorf("Indicators = %d, want %d (%+v)", r.Indicators, tt.indicators, r)
			}
			if r.Compatible != tt.compatible {
				t.Errorf("Compatible = %v, want %v", r.Compatible, tt.compatible)
			}
			if !r.Compatible && r.Reason == "" {
				t.Error("incompatible result without reason")
			}
		})
	}
}

func TestAndroidTabletRule(t *testing.T) {
	if !isTablet(uaAndroidTablet) {
		t.Error("android without mobile not classified as tablet")
	}
	if isTablet(uaAndroidPhone) {
		t.Error("android mobile classified as tablet")
	}
}

func TestCheckTerminal(t *testing.T) {
	grid := core.NewGrid(constants.BoardSize, constants.CellSize)
	if r := CheckTerminal(constants.MinTerminalCols, constants.MinTerminalRows, grid); !r.Compatible {
		t.Errorf("minimum terminal rejected: %+v", r)
	}
	r := CheckTerminal(80, 24, grid)
	if r.Compatible {
		t.Fatal("80x24 terminal accepted")
	}
	if !strings.Contains(r.Reason, "80x24") {
		t.Errorf("Reason = %q", r.Reason)
	}
}

func TestTerminalSizeFollowsGrid(t *testing.T) {
	tests := []struct {
		name       string
		grid       core.Grid
		cols, rows int
	}{
		{"default 30x30", core.Grid{Width: 30, Height: 30}, constants.MinTerminalCols, constants.MinTerminalRows},
		{"large 60x60", core.Grid{Width: 60, Height: 60}, 60*constants.CellColumns + 2 + constants.BoardMargin + constants.SidePanelWidth, 64},
		{"small 5x5 keeps panel rows", core.Grid{Width: 5, Height: 5}, 5*constants.CellColumns + 2 + constants.BoardMargin + constants.SidePanelWidth, constants.MinTerminalRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := TerminalSize(tt.grid)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("TerminalSize() = %dx%d, want %dx%d", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestCheckTerminalLargeGrid(t *testing.T) {
	grid := core.Grid{Width: 60, Height: 60}

	// A terminal fitting the default board is too small for 60x60
	r := CheckTerminal(constants.MinTerminalCols, constants.MinTerminalRows, grid)
	if r.Compatible {
		t.Fatal("default-sized terminal accepted for a 60x60 grid")
	}
	if !strings.Contains(r.Reason, "167x64") {
		t.Errorf("Reason = %q, want required size 167x64", r.Reason)
	}

	if r := CheckTerminal(167, 63, grid); r.Compatible {
		t.Error("one row short accepted")
	}
	if r := CheckTerminal(166, 64, grid); r.Compatible {
		t.Error("one column short accepted")
	}
	if r := CheckTerminal(167, 64, grid); !r.Compatible {
		t.Errorf("exact fit rejected: %+v", r)
	}
}

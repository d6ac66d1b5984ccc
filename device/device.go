// Package device decides whether the current display can host a game
package device

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
)

// SmallScreenWidth is the widest viewport, in pixels, still counted as a small screen
const SmallScreenWidth = 1024

// MinIndicators is the number of mobile indicators that marks a device incompatible
const MinIndicators = 2

var (
	mobileRe = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)
	tabletRe = regexp.MustCompile(`(?i)ipad|tablet|playbook|silk`)
)

// Probe is what a client reports about itself
type Probe struct {
	UserAgent string `json:"user_agent" query:"ua"`
	Touch     bool   `json:"touch" query:"touch"`
	Width     int    `json:"width" query:"width"`
	Height    int    `json:"height" query:"height"`
}

// Result is the outcome of a compatibility check
type Result struct {
	Mobile      bool   `json:"mobile"`
	Tablet      bool   `json:"tablet"`
	Touch       bool   `json:"touch"`
	SmallScreen bool   `json:"small_screen"`
	Indicators  int    `json:"indicators"`
	Compatible  bool   `json:"compatible"`
	Reason      string `json:"reason,omitempty"`
}

// Check applies the mobile/tablet heuristic
// A device is incompatible when at least two of mobile UA, tablet UA, touch and small screen hold
func Check(p Probe) Result {
	r := Result{
		Mobile:      mobileRe.MatchString(p.UserAgent),
		Tablet:      isTablet(p.UserAgent),
		Touch:       p.Touch,
		SmallScreen: p.Width > 0 && p.Width <= SmallScreenWidth,
	}
	for _, ok := range []bool{r.Mobile, r.Tablet, r.Touch, r.SmallScreen} {
		if ok {
			r.Indicators++
		}
	}
	r.Compatible = r.Indicators < MinIndicators
	if !r.Compatible {
		r.Reason = fmt.Sprintf("%d mobile indicators: %s", r.Indicators, strings.Join(r.names(), ", "))
	}
	return r
}

// isTablet matches tablet keywords, or an Android UA with no "mobile" after the last "android"
func isTablet(ua string) bool {
	if tabletRe.MatchString(ua) {
		return true
	}
	lower := strings.ToLower(ua)
	idx := strings.LastIndex(lower, "android")
	return idx >= 0 && !strings.Contains(lower[idx:], "mobile")
}

func (r Result) names() []string {
	var out []string
	if r.Mobile {
		out = append(out, "mobile user agent")
	}
	if r.Tablet {
		out = append(out, "tablet user agent")
	}
	if r.Touch {
		out = append(out, "touch screen")
	}
	if r.SmallScreen {
		out = append(out, "small screen")
	}
	return out
}

// TerminalSize returns the smallest terminal that draws grid with its frame, status line and side panel
// Rows never drop below MinTerminalRows, which the side panel needs on small grids
func TerminalSize(grid core.Grid) (cols, rows int) {
	cols = grid.Width*constants.CellColumns + 2 + constants.BoardMargin + constants.SidePanelWidth
	rows = max(grid.Height+4, constants.MinTerminalRows)
	return cols, rows
}

// CheckTerminal reports whether a terminal of cols x rows can draw grid and the side panel
func CheckTerminal(cols, rows int, grid core.Grid) Result {
	r := Result{Compatible: true}
	needCols, needRows := TerminalSize(grid)
	if cols < needCols || rows < needRows {
		r.SmallScreen = true
		r.Indicators = 1
		r.Compatible = false
		r.Reason = fmt.Sprintf("terminal %dx%d is smaller than %dx%d", cols, rows, needCols, needRows)
	}
	return r
}

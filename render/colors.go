package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/health-snake/core"
)

// Palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoardBg     = tcell.NewRGBColor(18, 32, 28)    // Deep green board
	RgbBoardGrid   = tcell.NewRGBColor(28, 46, 40)    // Checker shade
	RgbFrame       = tcell.NewRGBColor(102, 187, 106) // Soft green frame
	RgbText        = tcell.NewRGBColor(220, 220, 220) // Body text
	RgbTextDim     = tcell.NewRGBColor(140, 140, 150) // Secondary text
	RgbTitle       = tcell.NewRGBColor(129, 199, 132) // Headings
	RgbAccent      = tcell.NewRGBColor(255, 213, 79)  // Score and highlights
	RgbSnakeHead   = tcell.NewRGBColor(76, 175, 80)   // Head
	RgbSnakeBody   = tcell.NewRGBColor(46, 125, 50)   // Body
	RgbSnakeDead   = tcell.NewRGBColor(183, 28, 28)   // Body after collision
	RgbPopupBg     = tcell.NewRGBColor(38, 50, 56)    // Popup panel
	RgbPopupBorder = tcell.NewRGBColor(255, 213, 79)  // Popup frame
	RgbProgressBar = tcell.NewRGBColor(102, 187, 106) // Filled progress
	RgbProgressBg  = tcell.NewRGBColor(55, 71, 79)    // Empty progress
	RgbWarning     = tcell.NewRGBColor(239, 83, 80)   // Errors and incompatibility

	// State indicator backgrounds
	RgbStateIdleBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStateRunningBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatePausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

// Base styles
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleDim     = StyleDefault.Foreground(RgbTextDim)
	StyleTitle   = StyleDefault.Foreground(RgbTitle).Bold(true)
	StyleAccent  = StyleDefault.Foreground(RgbAccent).Bold(true)
	StyleWarning = StyleDefault.Foreground(RgbWarning).Bold(true)
	StyleFrame   = StyleDefault.Foreground(RgbFrame)
)

// ToColor converts a core RGB to a tcell color
func ToColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ItemTint returns a dimmed cell background from a fact color, falling back to the board shade
func ItemTint(hex string) tcell.Color {
	c, err := core.ParseHexRGB(hex)
	if err != nil {
		return RgbBoardBg
	}
	return ToColor(core.RGB{R: 18, G: 32, B: 28}.Blend(c, 0.35))
}

// ProgressColor blends from the empty shade toward green as progress approaches 100
func ProgressColor(percent float64) tcell.Color {
	from := core.RGB{R: 255, G: 167, B: 38}
	to := core.RGB{R: 102, G: 187, B: 106}
	return ToColor(from.Blend(to, percent/100))
}

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/engine"
)

// Screen selects the top-level layout
type Screen uint8

const (
	ScreenLoading Screen = iota
	// ScreenGame is the menu, board or game over depending on session state
	ScreenGame
	ScreenIncompatible
	ScreenTooSmall
)

// View is everything the renderer needs for one frame
type View struct {
	Screen   Screen
	Snapshot engine.Snapshot

	// Loading screen
	LoadingFact     string
	LoadingProgress float64 // 0..1

	Guide  []catalog.GuideEntry
	Reason string // incompatibility detail

	Muted   bool
	Debug   bool
	Metrics map[string]any
}

// Renderer composes views into a buffer and flushes them to a tcell screen
// It reads snapshots only and never touches the session
type Renderer struct {
	buf *Buffer
}

// NewRenderer creates a renderer with an empty buffer
func NewRenderer() *Renderer {
	return &Renderer{buf: NewBuffer(0, 0)}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Render draws v at the screen size and shows it
func (r *Renderer) Render(screen tcell.Screen, v View) {
	w, h := screen.Size()
	r.Draw(w, h, v)
	r.buf.Flush(screen)
	screen.Show()
}

// Draw composes v into a width x height buffer
func (r *Renderer) Draw(width, height int, v View) {
	if bw, bh := r.buf.Size(); bw != width || bh != height {
		r.buf.Resize(width, height)
	} else {
		r.buf.Clear()
	}

	switch v.Screen {
	case ScreenLoading:
		r.drawLoading(v)
	case ScreenIncompatible:
		r.drawIncompatible(v)
	case ScreenTooSmall:
		r.drawTooSmall(v)
	default:
		if v.Snapshot.State == engine.StateIdle {
			r.drawMenu(v)
			return
		}
		r.drawBoard(v.Snapshot)
		r.drawPanel(v)
		if v.Snapshot.State == engine.StateGameOver {
			r.drawGameOver(v.Snapshot)
		} else if v.Snapshot.PopupVisible() {
			r.drawPopup(v.Snapshot)
		}
	}
}

// centered writes s horizontally centered on row y
func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.buf.Size()
	x := (w - textWidth(s)) / 2
	r.buf.Text(max(x, 0), y, s, style, w)
}

func (r *Renderer) drawLoading(v View) {
	w, h := r.buf.Size()
	y := h/2 - 4
	r.centered(y, "🐍 Health Snake", StyleTitle)
	r.centered(y+2, "Loading healthy knowledge...", StyleDim)

	lines := wrap(v.LoadingFact, min(w-4, 60))
	for i, line := range lines {
		r.centered(y+4+i, line, StyleDefault)
	}

	barWidth := min(w-4, 40)
	bar := progressBar(v.LoadingProgress*100, barWidth)
	r.buf.Text((w-barWidth)/2, y+5+len(lines), bar, StyleDefault.Foreground(RgbProgressBar), 0)
}

func (r *Renderer) drawMenu(v View) {
	w, _ := r.buf.Size()
	snap := v.Snapshot
	y := 1
	r.centered(y, "🐍 Health Snake", StyleTitle)
	r.centered(y+1, "Steer the snake, collect healthy items, learn a fact with each bite", StyleDim)

	y += 3
	r.centered(y, "Item Guide", StyleAccent)
	y++
	colWidth := 24
	left := max((w-2*colWidth)/2, 0)
	for i, g := range v.Guide {
		x := left + (i%2)*colWidth
		row := y + i/2
		r.buf.Text(x, row, g.Glyph, StyleDefault, 0)
		r.buf.Text(x+3, row, fmt.Sprintf("%-12s %3d pts", g.Name, g.Points), StyleDefault, colWidth-3)
	}
	y += (len(v.Guide)+1)/2 + 1

	r.centered(y, "Difficulty", StyleAccent)
	y++
	x := max((w-36)/2, 0)
	for i, d := range engine.Difficulties {
		label := fmt.Sprintf("[%d] %s", i+1, d.String())
		style := StyleDim
		if d == snap.Selected {
			style = StyleDefault.Background(RgbStateRunningBg).Foreground(RgbStatusText).Bold(true)
		}
		x += r.buf.Text(x, y, label, style, 0) + 2
	}

	y += 2
	for _, line := range []string{
		"Enter  start game",
		"Arrows / hjkl / wasd  steer",
		"Space  pause    m  menu    q  quit",
	} {
		r.centered(y, line, StyleDim)
		y++
	}

	if !snap.Compatible {
		r.centered(y+1, "This device cannot start a game", StyleWarning)
	}
}

// boardOrigin is the top-left corner of the board frame
func boardOrigin() (int, int) {
	return 0, 0
}

// cellToScreen maps a grid cell to the left column and row inside the frame
func cellToScreen(x, y int) (int, int) {
	ox, oy := boardOrigin()
	return ox + 1 + x*constants.CellColumns, oy + 1 + y
}

func (r *Renderer) drawBoard(snap engine.Snapshot) {
	ox, oy := boardOrigin()
	gw, gh := snap.Grid.Width, snap.Grid.Height
	r.buf.Box(ox, oy, gw*constants.CellColumns+2, gh+2, StyleFrame)

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			bg := RgbBoardBg
			if (x+y)%2 == 1 {
				bg = RgbBoardGrid
			}
			sx, sy := cellToScreen(x, y)
			r.buf.Fill(sx, sy, constants.CellColumns, 1, " ", StyleDefault.Background(bg))
		}
	}

	for _, it := range snap.Items {
		sx, sy := cellToScreen(it.Position.X, it.Position.Y)
		r.buf.Set(sx, sy, it.Glyph, StyleDefault.Background(ItemTint(it.Color)))
	}

	body := RgbSnakeBody
	head := RgbSnakeHead
	if snap.State == engine.StateGameOver {
		body, head = RgbSnakeDead, RgbSnakeDead
	}
	// Draw tail first so the head wins on the grown duplicate
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		if !snap.Grid.InBounds(p) {
			continue
		}
		sx, sy := cellToScreen(p.X, p.Y)
		if i == 0 {
			style := StyleDefault.Background(head).Foreground(RgbStatusText).Bold(true)
			r.buf.Set(sx, sy, "•", style)
			r.buf.Set(sx+1, sy, "•", style)
			continue
		}
		r.buf.Fill(sx, sy, constants.CellColumns, 1, " ", StyleDefault.Background(body))
	}

	// Status line below the frame
	r.buf.Text(ox, oy+gh+2, statusHint(snap), StyleDim, gw*constants.CellColumns+2)
}

func statusHint(snap engine.Snapshot) string {
	switch {
	case snap.State == engine.StatePaused:
		return "Paused  Space resume  m menu  q quit"
	case snap.PopupVisible():
		return "Enter continue"
	case snap.State == engine.StateGameOver:
		return "Enter play again  m menu  q quit"
	default:
		return "Arrows steer  Space pause  m menu  q quit"
	}
}

func stateIndicator(s engine.SessionState) (string, tcell.Style) {
	base := StyleDefault.Foreground(RgbStatusText).Bold(true)
	switch s {
	case engine.StateRunning:
		return constants.StateTextRunning, base.Background(RgbStateRunningBg)
	case engine.StatePaused:
		return constants.StateTextPaused, base.Background(RgbStatePausedBg)
	case engine.StateGameOver:
		return constants.StateTextGameOver, base.Background(RgbStateGameOverBg)
	default:
		return constants.StateTextIdle, base.Background(RgbStateIdleBg)
	}
}

// panelOrigin is the top-left corner of the side panel right of the board
func panelOrigin(snap engine.Snapshot) (int, int) {
	ox, oy := boardOrigin()
	return ox + snap.Grid.Width*constants.CellColumns + 2 + constants.BoardMargin, oy
}

func (r *Renderer) drawPanel(v View) {
	snap := v.Snapshot
	px, py := panelOrigin(snap)
	width := constants.SidePanelWidth

	r.buf.Text(px, py, "HEALTH SNAKE", StyleTitle, width)
	text, style := stateIndicator(snap.State)
	r.buf.Text(px+width-constants.StateIndicatorWidth, py, text, style, constants.StateIndicatorWidth)

	y := py + 2
	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Items", fmt.Sprintf("%d", snap.Collected)},
		{"Length", fmt.Sprintf("%d", len(snap.Snake))},
		{"Speed", snap.DifficultyText()},
	}
	for _, row := range rows {
		r.buf.Text(px, y, row.label, StyleDim, 0)
		r.buf.Text(px+10, y, row.value, StyleAccent, width-10)
		y++
	}
	if v.Muted {
		r.buf.Text(px, y, "Sound off (Ctrl-S)", StyleDim, width)
	}
	y += 2

	r.buf.Text(px, y, fmt.Sprintf("Health Progress %3.0f%%", snap.Progress), StyleDefault, width)
	y++
	r.buf.Text(px, y, progressBar(snap.Progress, width), StyleDefault.Foreground(ProgressColor(snap.Progress)), width)
	y += 2

	r.buf.Text(px, y, "Recent Facts", StyleTitle, width)
	y++
	if len(snap.RecentFacts) == 0 {
		r.buf.Text(px, y, "Collect items to learn facts", StyleDim, width)
		y++
	}
	for _, f := range snap.RecentFacts {
		lines := wrap(f.Message, width-3)
		if len(lines) > 3 {
			lines = lines[:3]
		}
		r.buf.Text(px, y, f.Glyph, StyleDefault, 0)
		for _, line := range lines {
			r.buf.Text(px+3, y, line, StyleDefault, width-3)
			y++
		}
		y++
	}

	if v.Debug {
		r.drawDebug(px, y, width, v.Metrics)
	}
}

func (r *Renderer) drawDebug(x, y, width int, metrics map[string]any) {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r.buf.Text(x, y, "Debug", StyleTitle, width)
	for i, k := range keys {
		r.buf.Text(x, y+1+i, fmt.Sprintf("%-26s %v", k, metrics[k]), StyleDim, width)
	}
}

// overlay draws a framed panel centered on the board and returns its inner left column and top row
func (r *Renderer) overlay(snap engine.Snapshot, w, h int, border tcell.Color) (int, int) {
	ox, oy := boardOrigin()
	boardW := snap.Grid.Width*constants.CellColumns + 2
	boardH := snap.Grid.Height + 2
	x := ox + max((boardW-w)/2, 0)
	y := oy + max((boardH-h)/2, 0)
	bg := StyleDefault.Background(RgbPopupBg)
	r.buf.Fill(x, y, w, h, " ", bg)
	r.buf.Box(x, y, w, h, bg.Foreground(border))
	return x + 2, y + 1
}

func (r *Renderer) drawPopup(snap engine.Snapshot) {
	p := snap.Popup
	width := min(constants.PopupWidth, snap.Grid.Width*constants.CellColumns)
	lines := wrap(p.Item.Message, width-4)
	height := len(lines) + 7

	x, y := r.overlay(snap, width, height, RgbPopupBorder)
	bg := StyleDefault.Background(RgbPopupBg)
	inner := width - 4

	col := r.buf.Text(x, y, p.Item.Glyph, bg, 0)
	r.buf.Text(x+col+1, y, p.Title, bg.Foreground(RgbTitle).Bold(true), inner-col-1)
	for i, line := range lines {
		r.buf.Text(x, y+2+i, line, bg, inner)
	}
	r.buf.Text(x, y+3+len(lines), fmt.Sprintf("+%d points", p.Item.Points), bg.Foreground(RgbAccent).Bold(true), inner)
	r.buf.Text(x, y+4+len(lines), "Press Enter to continue", bg.Foreground(RgbTextDim), inner)
}

func (r *Renderer) drawGameOver(snap engine.Snapshot) {
	width := min(constants.PopupWidth, snap.Grid.Width*constants.CellColumns)
	x, y := r.overlay(snap, width, 9, RgbWarning)
	bg := StyleDefault.Background(RgbPopupBg)
	inner := width - 4

	cause := "Game over"
	switch snap.EndCause {
	case engine.CollisionWall:
		cause = "You hit the wall!"
	case engine.CollisionSelf:
		cause = "You ran into yourself!"
	}
	r.buf.Text(x, y, "GAME OVER", bg.Foreground(RgbWarning).Bold(true), inner)
	r.buf.Text(x, y+1, cause, bg, inner)
	r.buf.Text(x, y+3, fmt.Sprintf("Final score      %d", snap.Score), bg.Foreground(RgbAccent), inner)
	r.buf.Text(x, y+4, fmt.Sprintf("Items collected  %d", snap.Collected), bg, inner)
	r.buf.Text(x, y+6, "Enter play again  m menu  q quit", bg.Foreground(RgbTextDim), inner)
}

func (r *Renderer) drawIncompatible(v View) {
	_, h := r.buf.Size()
	y := h/2 - 3
	r.centered(y, "⚠ Device Not Supported", StyleWarning)
	r.centered(y+2, "Health Snake needs a desktop-sized display and a keyboard.", StyleDefault)
	if v.Reason != "" {
		r.centered(y+3, v.Reason, StyleDim)
	}
	r.centered(y+5, "Press q to quit", StyleDim)
}

func (r *Renderer) drawTooSmall(v View) {
	w, h := r.buf.Size()
	r.buf.Text(0, 0, "Terminal too small", StyleWarning, w)
	reason := v.Reason
	if reason == "" {
		reason = fmt.Sprintf("terminal %dx%d", w, h)
	}
	r.buf.Text(0, 1, reason, StyleDim, w)
	r.buf.Text(0, 2, "Resize the window or press q to quit", StyleDim, w)
}

// progressBar renders percent (0..100) as a width-column bar
func progressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(percent, 100))
	filled := int(percent / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

package constants

// UI Layout Constants
const (
	// CellColumns is the number of terminal columns drawn per grid cell (emoji are double width)
	CellColumns = 2

	// SidePanelWidth is the width of the HUD and recent facts panel right of the board
	SidePanelWidth = 44

	// BoardMargin is the blank gap between the board frame and the side panel
	BoardMargin = 1

	// PopupWidth is the maximum width of the fact popup overlay
	PopupWidth = 48
)

// State indicator text (all padded to StateIndicatorWidth)
const (
	StateIndicatorWidth = 10

	StateTextIdle     = "  MENU   "
	StateTextRunning  = " RUNNING "
	StateTextPaused   = " PAUSED  "
	StateTextGameOver = "GAME OVER"
)

// Terminal probe thresholds
const (
	// MinTerminalRows is the smallest terminal height that can draw the default board, also the side panel floor
	MinTerminalRows = 34

	// MinTerminalCols is the smallest terminal width that can draw the default board frame, gap and side panel
	MinTerminalCols = 30*CellColumns + 2 + BoardMargin + SidePanelWidth
)

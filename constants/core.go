package constants

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 100

	// EventQueueSize is the buffered capacity of each spectator client feed
	EventQueueSize = 16
)

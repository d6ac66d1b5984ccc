package constants

import "time"

// Audio Engine Setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Collect Chime Timing
const (
	CollectSoundDuration = 180 * time.Millisecond
	CollectSoundAttack   = 5 * time.Millisecond
	CollectSoundRelease  = 120 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 450 * time.Millisecond
)

// Pause Click Timing
const (
	PauseSoundDuration = 40 * time.Millisecond
)

// Start Sweep Timing
const (
	StartSoundDuration = 250 * time.Millisecond
)

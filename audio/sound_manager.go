package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/health-snake/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays short generated cues through a single mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences pending cues
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether output is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCollect plays a rising chime, pitched higher for more valuable items
func (sm *SoundManager) PlayCollect(points int) {
	freq := 660 + 12*float64(min(points, 40))
	sm.play(beep.Take(sampleRate.N(constants.CollectSoundDuration), NewChimeGenerator(sampleRate, freq)))
}

// PlayGameOver plays a falling tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(constants.GameOverSoundDuration),
		NewSweepGenerator(sampleRate, 440, 110, constants.GameOverSoundDuration)))
}

// PlayPause plays a short click, lower when pausing
func (sm *SoundManager) PlayPause(paused bool) {
	freq := 880.0
	if paused {
		freq = 440
	}
	sm.play(beep.Take(sampleRate.N(constants.PauseSoundDuration), NewChimeGenerator(sampleRate, freq)))
}

// PlayStart plays an upward sweep
func (sm *SoundManager) PlayStart() {
	sm.play(beep.Take(sampleRate.N(constants.StartSoundDuration),
		NewSweepGenerator(sampleRate, 220, 660, constants.StartSoundDuration)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChimeGenerator generates a sine tone with a fast attack and exponential release
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime generator at freq Hz
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := constants.CollectSoundAttack.Seconds()
	release := constants.CollectSoundRelease.Seconds()
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/attack, 1.0) * math.Exp(-t/release*3)

		// Fundamental with a soft octave for a bell-like tone
		sample := 0.25*math.Sin(2*math.Pi*g.freq*t) + 0.08*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly between two frequencies over a duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		total: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide has no discontinuities
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		envelope := 0.2 * (1 - progress*0.8)
		sample := envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/health-snake/constants"
)

// Difficulty selects the tick period of the next session
// The zero value is Medium so an unset level picks the default period
type Difficulty uint8

const (
	DifficultyMedium Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

// Difficulties lists the selectable levels in menu order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Interval returns the tick period for the level
func (d Difficulty) Interval() time.Duration {
	switch d {
	case DifficultyEasy:
		return constants.EasyTickInterval
	case DifficultyHard:
		return constants.HardTickInterval
	default:
		return constants.MediumTickInterval
	}
}

// String returns the display name of the level
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Custom"
	}
}

// MarshalText encodes the level by display name
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a level name in any case
func (d *Difficulty) UnmarshalText(b []byte) error {
	level, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = level
	return nil
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return DifficultyEasy, nil
	case "MEDIUM", "":
		return DifficultyMedium, nil
	case "HARD":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyText names a tick period, "Custom" when it matches no level
func DifficultyText(period time.Duration) string {
	for _, d := range Difficulties {
		if d.Interval() == period {
			return d.String()
		}
	}
	return "Custom"
}

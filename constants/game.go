package constants

import "time"

// Board Geometry
const (
	// BoardSize is the logical board edge length in layout units
	BoardSize = 600

	// CellSize is the logical edge length of one grid cell
	CellSize = 20
)

// Item Stocking
const (
	// InitialItems is the number of items generated at session start
	InitialItems = 5

	// ItemFloor is the live item count below which one item is generated per tick
	ItemFloor = 5

	// MaxPlacementAttempts bounds rejection sampling before the last draw is accepted
	MaxPlacementAttempts = 100
)

// Fact Feed
const (
	// RecentFactsCap is the number of most-recent facts kept per session
	RecentFactsCap = 5

	// CollectionGoal is the item count that fills the collection progress bar
	CollectionGoal = 50
)

// Difficulty Tick Periods
const (
	EasyTickInterval   = 200 * time.Millisecond
	MediumTickInterval = 150 * time.Millisecond
	HardTickInterval   = 100 * time.Millisecond
)

// Loading Screen
const (
	// LoadingDuration is how long the loading screen is shown before the menu
	LoadingDuration = 6 * time.Second

	// LoadingFactInterval is the rotation period of loading screen facts
	LoadingFactInterval = 6 * time.Second
)

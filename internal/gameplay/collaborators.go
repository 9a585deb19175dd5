package gameplay

import (
	"time"

	"github.com/vovakirdan/block-knock/internal/level"
)

// LevelEngine spawns levels and evaluates rank. Implemented by *level.Engine.
type LevelEngine interface {
	StartLevel(levelNumber int) int
	GetRank(levelNumber int, throws int) level.Rank
	LevelCount() int
}

// UI receives everything the controller wants to show.
type UI interface {
	ShowScreen(name Screen)
	ShowHUD(show bool)
	UpdateHUD(levelNumber int, throws int, rank level.Rank)
	// OnLanguageChanged tells the UI to reload its localized text.
	OnLanguageChanged()
}

// Projectiles owns the balls that have been thrown.
type Projectiles interface {
	DestroyBalls()
}

// Scheduler runs a callback once after a delay, on the caller's goroutine.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Recorder stores results of finished levels.
type Recorder interface {
	RecordResult(r Result) error
}

var _ LevelEngine = (*level.Engine)(nil)

// Package level holds per-level configuration and decides player rank.
//
// The Engine spawns the block layout of a level through a Spawner and evaluates
// the rank for a throw count against the level's thresholds.
package level

import (
	"errors"

	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/entity"
)

// Config describes a single level. GoldThreshold is expected to be less than or
// equal to SilverThreshold; the engine does not check it.
type Config struct {
	Name            string
	GoldThreshold   int // throws <= GoldThreshold earns Gold
	SilverThreshold int // throws <= SilverThreshold earns Silver, otherwise Bronze
	Layout          Template
}

// Handle identifies content spawned by a Spawner.
type Handle uint64

// Spawner places level content into the world.
type Spawner interface {
	// Spawn instantiates the template at the spawner's fixed spawn pose.
	Spawn(t Template) Handle
	// Destroy removes everything that belongs to the handle.
	Destroy(h Handle)
	// Count returns how many entities of the kind belong to the handle.
	Count(h Handle, kind entity.Kind) int
}

// ErrNoLevels is returned when an engine is built without any level.
var ErrNoLevels = errors.New("level: at least one level is required")

// Engine owns the ordered level list and the content of the running level.
type Engine struct {
	levels  []Config
	spawner Spawner
	current Handle
	spawned bool
}

// NewEngine creates an engine over the given levels.
func NewEngine(levels []Config, spawner Spawner) (*Engine, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return &Engine{
		levels:  levels,
		spawner: spawner,
	}, nil
}

// LevelCount returns the number of levels.
func (e *Engine) LevelCount() int {
	return len(e.levels)
}

// Level returns the configuration of a level. The number is clamped into range.
func (e *Engine) Level(levelNumber int) Config {
	return e.levels[e.index(levelNumber)]
}

// StartLevel clears the previous level content and spawns the given level.
// Out-of-range level numbers are clamped to the first or last level.
// Returns the number of good blocks in the spawned content.
func (e *Engine) StartLevel(levelNumber int) int {
	if e.spawned {
		e.spawner.Destroy(e.current)
	}

	lvl := e.levels[e.index(levelNumber)]
	e.current = e.spawner.Spawn(lvl.Layout)
	e.spawned = true

	return e.spawner.Count(e.current, entity.GoodBlock)
}

// GetRank returns the rank earned on a level after the given number of throws.
//
// Unlike StartLevel the level number is not clamped: it must be within
// [1, LevelCount()], anything else panics with an index out of range.
func (e *Engine) GetRank(levelNumber int, throws int) Rank {
	lvl := e.levels[levelNumber-1]

	switch {
	case throws <= lvl.GoldThreshold:
		return Gold
	case throws <= lvl.SilverThreshold:
		return Silver
	default:
		return Bronze
	}
}

// index converts a 1-based level number to a clamped slice index.
func (e *Engine) index(levelNumber int) int {
	return core.Clamp(levelNumber-1, 0, len(e.levels)-1)
}

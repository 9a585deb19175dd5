package gameplay

import "github.com/vovakirdan/block-knock/internal/level"

// State is the phase of the game flow.
type State int

const (
	Tutorial State = iota // Instructions are shown, throwing is blocked
	InGame                // The player can throw balls
	GameOver              // The level ended, input is blocked until a reset
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Tutorial:
		return "Tutorial"
	case InGame:
		return "InGame"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Screen names a full-screen overlay the UI can show.
type Screen string

const (
	ScreenNone          Screen = ""
	ScreenTutorial      Screen = "Tutorial"
	ScreenLevelComplete Screen = "Level Complete"
	ScreenGameComplete  Screen = "Game Complete"
	ScreenGameOver      Screen = "Game Over"
)

// Session holds the counters of the level being played.
type Session struct {
	Level           int        // Current level number, 1-based
	Throws          int        // Balls thrown on this level
	GoodBlockTotal  int        // Good blocks spawned for this level
	GoodBlockCaught int        // Good blocks knocked off so far
	Rank            level.Rank // Rank for the current throw count
}

// Outcome is how a finished level ended.
type Outcome int

const (
	OutcomeLevelComplete Outcome = iota // All good blocks off, more levels remain
	OutcomeGameComplete                 // All good blocks off on the last level
	OutcomeGameOver                     // A bad block fell before the level was cleared
)

// String returns the outcome name as stored in the result history.
func (o Outcome) String() string {
	switch o {
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeGameComplete:
		return "game_complete"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Won reports whether the outcome cleared the level.
func (o Outcome) Won() bool {
	return o == OutcomeLevelComplete || o == OutcomeGameComplete
}

// Screen returns the overlay shown for the outcome.
func (o Outcome) Screen() Screen {
	switch o {
	case OutcomeLevelComplete:
		return ScreenLevelComplete
	case OutcomeGameComplete:
		return ScreenGameComplete
	default:
		return ScreenGameOver
	}
}

// Result is the record of one finished level.
type Result struct {
	Level   int
	Throws  int
	Rank    level.Rank
	Outcome Outcome
}

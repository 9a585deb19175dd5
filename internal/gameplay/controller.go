// Package gameplay drives the flow of a Block Knock session.
//
// The Controller moves between three states: Tutorial, InGame and GameOver.
// It counts throws and knocked-off good blocks for the current level, asks the
// level engine for the player's rank, and tells the UI what to show. All calls are
// expected on a single goroutine; delayed transitions go through a Scheduler and
// carry a generation token so a reset invalidates anything still pending.
package gameplay

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/level"
)

// DefaultSettleDelay is how long the controller waits for the table to settle
// before showing a result or resuming play.
const DefaultSettleDelay = 500 * time.Millisecond

// Deps are the collaborators the controller drives.
type Deps struct {
	Levels    LevelEngine
	UI        UI
	Balls     Projectiles
	Scheduler Scheduler
	Recorder  Recorder    // Optional
	Logger    *log.Logger // Optional
}

// Options tune the controller.
type Options struct {
	SettleDelay time.Duration // Delay before results and restarts
	StartLevel  int           // Level played first and after a full restart
}

// DefaultOptions returns the standard controller options.
func DefaultOptions() Options {
	return Options{
		SettleDelay: DefaultSettleDelay,
		StartLevel:  1,
	}
}

// Controller is the gameplay state machine.
type Controller struct {
	levels   LevelEngine
	ui       UI
	balls    Projectiles
	sched    Scheduler
	recorder Recorder
	logger   *log.Logger

	settleDelay time.Duration
	startLevel  int

	state      State
	session    Session
	generation uint64
}

// NewController creates a controller in the Tutorial state.
// Call Start to spawn the first level and show the tutorial.
func NewController(deps Deps, opts Options) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}
	startLevel := core.Clamp(opts.StartLevel, 1, deps.Levels.LevelCount())

	return &Controller{
		levels:      deps.Levels,
		ui:          deps.UI,
		balls:       deps.Balls,
		sched:       deps.Scheduler,
		recorder:    deps.Recorder,
		logger:      logger,
		settleDelay: opts.SettleDelay,
		startLevel:  startLevel,
		state:       Tutorial,
		session:     Session{Level: startLevel, Rank: level.Gold},
	}
}

// Start refreshes the HUD, shows the tutorial and spawns the current level.
func (c *Controller) Start() {
	c.ui.UpdateHUD(c.session.Level, c.session.Throws, c.session.Rank)
	c.ui.ShowHUD(false)
	c.ui.ShowScreen(ScreenTutorial)
	c.session.GoodBlockTotal = c.levels.StartLevel(c.session.Level)

	c.logger.Debug("session started",
		"level", c.session.Level,
		"good_blocks", c.session.GoodBlockTotal,
	)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Session returns a copy of the current level counters.
func (c *Controller) Session() Session {
	return c.session
}

// Generation returns the current session generation.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// CanThrow reports whether the player may launch balls.
func (c *Controller) CanThrow() bool {
	return c.state == InGame
}

// OnStartGame enters the InGame state.
func (c *Controller) OnStartGame() {
	c.setState(InGame)
	c.ui.ShowHUD(true)
	c.ui.ShowScreen(ScreenNone)
}

// OnThrow counts a throw and refreshes the rank.
// It does not check the state; callers gate throwing with CanThrow.
func (c *Controller) OnThrow() {
	c.session.Throws++
	c.session.Rank = c.levels.GetRank(c.session.Level, c.session.Throws)
	c.ui.UpdateHUD(c.session.Level, c.session.Throws, c.session.Rank)
}

// OnGoodBlockCaught counts a good block that left the table.
// Knocking off the last good block ends the level.
func (c *Controller) OnGoodBlockCaught() {
	if c.state != InGame {
		return
	}

	c.session.GoodBlockCaught++
	if c.session.GoodBlockCaught == c.session.GoodBlockTotal {
		c.setState(GameOver)
		c.after("check result", c.CheckResult)
	}
}

// OnBadBlockCaught ends the level: any bad block leaving the table is a loss.
func (c *Controller) OnBadBlockCaught() {
	if c.state != InGame {
		return
	}

	c.setState(GameOver)
	c.after("check result", c.CheckResult)
}

// CheckResult shows the screen for how the level ended and records the result.
func (c *Controller) CheckResult() {
	outcome := OutcomeGameOver
	if c.session.GoodBlockCaught == c.session.GoodBlockTotal {
		outcome = OutcomeLevelComplete
		if c.session.Level == c.levels.LevelCount() {
			outcome = OutcomeGameComplete
		}
	}

	c.ui.ShowScreen(outcome.Screen())
	c.logger.Info("level finished",
		"level", c.session.Level,
		"throws", c.session.Throws,
		"rank", c.session.Rank,
		"outcome", outcome,
	)

	if c.recorder == nil {
		return
	}
	err := c.recorder.RecordResult(Result{
		Level:   c.session.Level,
		Throws:  c.session.Throws,
		Rank:    c.session.Rank,
		Outcome: outcome,
	})
	if err != nil {
		c.logger.Warn("could not record result", "error", err)
	}
}

// OnRetryLevel clears the table, respawns the current level and resumes play
// after the settle delay.
func (c *Controller) OnRetryLevel() {
	c.generation++

	c.balls.DestroyBalls()
	c.session.GoodBlockTotal = c.levels.StartLevel(c.session.Level)

	c.session.Rank = level.Gold
	c.session.Throws = 0
	c.session.GoodBlockCaught = 0
	c.ui.UpdateHUD(c.session.Level, c.session.Throws, c.session.Rank)
	c.ui.ShowScreen(ScreenNone)

	c.logger.Debug("level reset",
		"level", c.session.Level,
		"good_blocks", c.session.GoodBlockTotal,
		"generation", c.generation,
	)
	c.after("start game", c.OnStartGame)
}

// OnNextLevel advances to the next level and starts it. After the last level
// the sequence wraps back to level 1.
func (c *Controller) OnNextLevel() {
	if c.session.Level >= c.levels.LevelCount() {
		c.session.Level = 1
	} else {
		c.session.Level++
	}
	c.OnRetryLevel()
}

// OnRestart throws away the whole session after the settle delay and returns
// to the tutorial on the start level.
func (c *Controller) OnRestart() {
	c.generation++
	c.after("reload", c.reload)
}

// OnLanguageChanged refreshes localized UI text.
func (c *Controller) OnLanguageChanged() {
	c.ui.OnLanguageChanged()
	c.ui.UpdateHUD(c.session.Level, c.session.Throws, c.session.Rank)
}

// reload resets everything to the state the controller was created in.
func (c *Controller) reload() {
	c.balls.DestroyBalls()
	c.setState(Tutorial)
	c.session = Session{Level: c.startLevel, Rank: level.Gold}
	c.Start()
}

// after runs fn once the settle delay has passed, unless a reset happened first.
func (c *Controller) after(name string, fn func()) {
	gen := c.generation
	c.sched.After(c.settleDelay, func() {
		if gen != c.generation {
			c.logger.Debug("dropped stale callback",
				"callback", name,
				"generation", gen,
				"current", c.generation,
			)
			return
		}
		fn()
	})
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.logger.Debug("state change", "from", c.state, "to", s)
	c.state = s
}

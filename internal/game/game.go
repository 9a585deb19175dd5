// Package game hosts a Block Knock session: it wires the table, level engine,
// gameplay controller, HUD and scheduler together and exposes the
// Reset/Step/Render loop the platform drives.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-knock/internal/config"
	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/entity"
	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/i18n"
	"github.com/vovakirdan/block-knock/internal/level"
	"github.com/vovakirdan/block-knock/internal/sound"
	"github.com/vovakirdan/block-knock/internal/table"
)

// ID is the identifier used for storage and logs.
const ID = "blockknock"

// Title is the display name.
const Title = "Block Knock"

// Options are optional collaborators for a game.
type Options struct {
	Recorder gameplay.Recorder // Stores finished levels
	Logger   *log.Logger
}

// Game implements one Block Knock session.
type Game struct {
	cfg      config.GameConfig
	levels   []level.Config
	recorder gameplay.Recorder
	logger   *log.Logger
	tr       *i18n.Localizer

	runtime core.RuntimeConfig
	tick    uint64
	aim     int

	table  *table.Table
	engine *level.Engine
	sched  *gameplay.TickScheduler
	ctrl   *gameplay.Controller
	hud    *HUD
	sounds *sound.Recent
}

// New creates a game from a loaded configuration. Call Reset before stepping.
func New(cfg config.GameConfig, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	levels, err := cfg.ToLevels(logger)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if tr.Language() != cfg.Language && cfg.Language != "" {
		logger.Warn("unknown language, using fallback", "language", cfg.Language, "fallback", tr.Language())
	}

	return &Game{
		cfg:      cfg,
		levels:   levels,
		recorder: opts.Recorder,
		logger:   logger,
		tr:       tr,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset builds a fresh session and shows the tutorial.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.tick = 0

	g.table = table.New(g.cfg.Table.Table())
	// Levels were validated in New, so the engine cannot fail here.
	g.engine, _ = level.NewEngine(g.levels, g.table)
	g.sched = gameplay.NewTickScheduler()
	g.hud = NewHUD(g.tr)
	g.sounds = sound.NewRecent(g.cfg.Sound.CueTicks, g.cfg.Sound.Bell)

	g.ctrl = gameplay.NewController(gameplay.Deps{
		Levels:    g.engine,
		UI:        g.hud,
		Balls:     g,
		Scheduler: g.sched,
		Recorder:  g.recorder,
		Logger:    g.logger,
	}, gameplay.Options{
		SettleDelay: g.cfg.SettleDelay,
		StartLevel:  g.cfg.StartLevel,
	})
	g.ctrl.Start()
	g.centerAim()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// DestroyBalls removes every ball from the table and silences their roll.
func (g *Game) DestroyBalls() {
	g.table.DestroyBalls()
	g.sounds.Reset()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sounds.Tick()

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.handleInput(in)
	g.sched.Advance(g.runtime.TickInterval())
	for _, ev := range g.table.Step() {
		g.dispatch(ev)
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies the actions allowed in the current state and screen.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLanguage) {
		g.tr.Next()
		g.ctrl.OnLanguageChanged()
		g.sounds.Play(sound.ButtonClick)
		g.logger.Debug("language changed", "language", g.tr.Language())
	}

	if g.ctrl.CanThrow() {
		width := g.table.Config().Width
		if in.Has(core.ActionAimLeft) {
			g.aim = core.Clamp(g.aim-1, 0, width-1)
		}
		if in.Has(core.ActionAimRight) {
			g.aim = core.Clamp(g.aim+1, 0, width-1)
		}
		if in.Has(core.ActionThrow) {
			g.table.Launch(g.aim)
			g.ctrl.OnThrow()
			g.sounds.Play(sound.BallShoot)
		}
		return
	}

	// Overlay buttons click when they do something.
	clicked := true
	switch g.hud.Screen() {
	case gameplay.ScreenTutorial:
		switch {
		case in.Has(core.ActionConfirm):
			g.ctrl.OnStartGame()
		default:
			clicked = false
		}
	case gameplay.ScreenLevelComplete:
		switch {
		case in.Has(core.ActionNext), in.Has(core.ActionConfirm):
			g.ctrl.OnNextLevel()
		case in.Has(core.ActionRetry):
			g.ctrl.OnRetryLevel()
		case in.Has(core.ActionRestart):
			g.ctrl.OnRestart()
		default:
			clicked = false
		}
	case gameplay.ScreenGameComplete:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.ctrl.OnRestart()
		case in.Has(core.ActionRetry):
			g.ctrl.OnRetryLevel()
		default:
			clicked = false
		}
	case gameplay.ScreenGameOver:
		switch {
		case in.Has(core.ActionRetry), in.Has(core.ActionConfirm):
			g.ctrl.OnRetryLevel()
		case in.Has(core.ActionRestart):
			g.ctrl.OnRestart()
		default:
			clicked = false
		}
	default:
		clicked = false
	}
	if clicked {
		g.sounds.Play(sound.ButtonClick)
	}
}

// dispatch routes a table event to the controller and the sound cues.
func (g *Game) dispatch(ev table.Event) {
	var cues []sound.Cue
	switch ev.Kind {
	case table.EventLeftTable:
		cues = sound.ForLeftTable(ev.Entity)
		switch ev.Entity {
		case entity.GoodBlock:
			g.ctrl.OnGoodBlockCaught()
		case entity.BadBlock:
			g.ctrl.OnBadBlockCaught()
		}
	case table.EventContact:
		cues = sound.ForContact(ev.Entity, ev.Other, g.ctrl.CanThrow())
	}

	for _, c := range cues {
		g.sounds.Play(c)
	}
}

func (g *Game) centerAim() {
	g.aim = g.table.Config().Width / 2
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	s := g.ctrl.Session()
	return core.GameState{
		Level:    s.Level,
		Throws:   s.Throws,
		Rank:     s.Rank.String(),
		Screen:   string(g.hud.Screen()),
		GameOver: g.ctrl.State() == gameplay.GameOver,
	}
}

// Controller exposes the gameplay controller.
func (g *Game) Controller() *gameplay.Controller {
	return g.ctrl
}

// Table exposes the table simulation.
func (g *Game) Table() *table.Table {
	return g.table
}

// HUD exposes the HUD view.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Aim returns the column the next ball will roll up.
func (g *Game) Aim() int {
	return g.aim
}

// Localizer returns the string tables in use.
func (g *Game) Localizer() *i18n.Localizer {
	return g.tr
}

// Bell returns the terminal bell when a hit cue just played and bells are on.
func (g *Game) Bell() string {
	return g.sounds.Bell()
}

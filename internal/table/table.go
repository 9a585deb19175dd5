// Package table simulates the playing surface: a grid of blocks seen from above,
// with balls rolled in from the near edge.
//
// It is deliberately simple. Balls travel straight up a column one row at a time;
// a ball that reaches a block pushes the contiguous stack in front of it and is
// absorbed. Anything pushed or rolled past the far edge leaves the table.
// Row 0 is the far edge, row Height-1 the edge the player throws from.
package table

import (
	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/entity"
	"github.com/vovakirdan/block-knock/internal/level"
)

// Config holds table dimensions and ball behaviour.
type Config struct {
	Width         int // Columns
	Height        int // Rows
	SpawnX        int // Column where a level template's left edge is placed
	SpawnY        int // Row where a level template's top edge is placed
	BallStepTicks int // Ticks a ball needs to roll one row
	Strength      int // Rows a ball pushes the stack it hits
}

// DefaultConfig returns the standard table.
func DefaultConfig() Config {
	return Config{
		Width:         16,
		Height:        12,
		SpawnX:        2,
		SpawnY:        2,
		BallStepTicks: 3,
		Strength:      1,
	}
}

// EventKind tells what happened on the table.
type EventKind int

const (
	EventLeftTable EventKind = iota // Entity fell off the far edge
	EventContact                    // Entity touched Other
)

// Event is something the table reports after a step.
type Event struct {
	Kind   EventKind
	Entity entity.Kind
	Other  entity.Kind // Only for EventContact
}

// Block is a block on the table.
type Block struct {
	X, Y  int
	Kind  entity.Kind
	owner level.Handle
}

// Ball is a ball rolling up a column. Y == Height means it has not reached the table yet.
type Ball struct {
	X, Y int
}

// Table is the grid simulation. It implements level.Spawner.
type Table struct {
	cfg    Config
	blocks []*Block
	balls  []*Ball
	handle level.Handle
	tick   int
	events []Event
}

// New creates an empty table.
func New(cfg Config) *Table {
	cfg.Width = core.Max(cfg.Width, 1)
	cfg.Height = core.Max(cfg.Height, 1)
	cfg.BallStepTicks = core.Max(cfg.BallStepTicks, 1)
	cfg.Strength = core.Max(cfg.Strength, 1)
	return &Table{cfg: cfg}
}

// Config returns the table configuration.
func (t *Table) Config() Config {
	return t.cfg
}

// Spawn places a template at the spawn position and returns a handle to it.
// Blocks falling outside the table or onto an occupied cell are skipped.
func (t *Table) Spawn(tpl level.Template) level.Handle {
	t.handle++
	for _, p := range tpl.Blocks {
		x, y := t.cfg.SpawnX+p.X, t.cfg.SpawnY+p.Y
		if !t.inside(x, y) || t.blockAt(x, y) != nil {
			continue
		}
		t.blocks = append(t.blocks, &Block{X: x, Y: y, Kind: p.Kind, owner: t.handle})
	}
	return t.handle
}

// Destroy removes every block spawned under the handle.
func (t *Table) Destroy(h level.Handle) {
	kept := t.blocks[:0]
	for _, b := range t.blocks {
		if b.owner != h {
			kept = append(kept, b)
		}
	}
	clear(t.blocks[len(kept):])
	t.blocks = kept
}

// Count returns how many blocks of a kind spawned under the handle are still on the table.
func (t *Table) Count(h level.Handle, kind entity.Kind) int {
	n := 0
	for _, b := range t.blocks {
		if b.owner == h && b.Kind == kind {
			n++
		}
	}
	return n
}

// Launch rolls a new ball up the given column. The column is clamped to the table.
func (t *Table) Launch(column int) {
	x := core.Clamp(column, 0, t.cfg.Width-1)
	t.balls = append(t.balls, &Ball{X: x, Y: t.cfg.Height})
}

// DestroyBalls removes every ball.
func (t *Table) DestroyBalls() {
	t.balls = t.balls[:0]
}

// Blocks returns the blocks currently on the table.
func (t *Table) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	for i, b := range t.blocks {
		out[i] = *b
	}
	return out
}

// Balls returns the balls currently rolling.
func (t *Table) Balls() []Ball {
	out := make([]Ball, len(t.balls))
	for i, b := range t.balls {
		out[i] = *b
	}
	return out
}

// Step advances the simulation by one tick and returns what happened.
func (t *Table) Step() []Event {
	t.events = nil
	t.tick++
	if t.tick%t.cfg.BallStepTicks != 0 {
		return nil
	}

	kept := t.balls[:0]
	for _, ball := range t.balls {
		if t.rollBall(ball) {
			kept = append(kept, ball)
		}
	}
	clear(t.balls[len(kept):])
	t.balls = kept

	return t.events
}

// rollBall moves a ball one row. Returns false if the ball is gone afterwards.
func (t *Table) rollBall(ball *Ball) bool {
	nextY := ball.Y - 1
	if nextY < 0 {
		t.emit(Event{Kind: EventLeftTable, Entity: entity.Ball})
		return false
	}

	if hit := t.blockAt(ball.X, nextY); hit != nil {
		t.emit(Event{Kind: EventContact, Entity: entity.Ball, Other: hit.Kind})
		for range t.cfg.Strength {
			t.push(ball.X, nextY)
			nextY--
			if t.blockAt(ball.X, nextY) == nil {
				break
			}
		}
		return false
	}

	if ball.Y == t.cfg.Height {
		t.emit(Event{Kind: EventContact, Entity: entity.Ball, Other: entity.Table})
	}
	ball.Y = nextY
	return true
}

// push moves the contiguous stack of blocks starting at (x, y) one row toward
// the far edge. The block at the front falls off if it is already on row 0.
func (t *Table) push(x, y int) {
	var stack []*Block
	for row := y; row >= 0; row-- {
		b := t.blockAt(x, row)
		if b == nil {
			break
		}
		stack = append(stack, b)
	}
	if len(stack) == 0 {
		return
	}

	for i := 0; i+1 < len(stack); i++ {
		t.emit(Event{Kind: EventContact, Entity: stack[i].Kind, Other: stack[i+1].Kind})
	}

	front := stack[len(stack)-1]
	if front.Y == 0 {
		t.remove(front)
		t.emit(Event{Kind: EventLeftTable, Entity: front.Kind})
		stack = stack[:len(stack)-1]
	}

	for _, b := range stack {
		b.Y--
	}
	if len(stack) > 0 {
		t.emit(Event{Kind: EventContact, Entity: stack[0].Kind, Other: entity.Table})
	}
}

func (t *Table) remove(target *Block) {
	for i, b := range t.blocks {
		if b == target {
			t.blocks = append(t.blocks[:i], t.blocks[i+1:]...)
			return
		}
	}
}

func (t *Table) blockAt(x, y int) *Block {
	for _, b := range t.blocks {
		if b.X == x && b.Y == y {
			return b
		}
	}
	return nil
}

func (t *Table) inside(x, y int) bool {
	return x >= 0 && x < t.cfg.Width && y >= 0 && y < t.cfg.Height
}

func (t *Table) emit(e Event) {
	t.events = append(t.events, e)
}

var _ level.Spawner = (*Table)(nil)

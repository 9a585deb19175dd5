// Package sound maps table contacts to sound cues.
package sound

import "github.com/vovakirdan/block-knock/internal/entity"

// Cue is a sound effect.
type Cue int

const (
	BallHitBlock Cue = iota
	BallHitTable
	BallRoll
	BallRollStop
	BlockHitBlock
	BlockHitTable
	BallShoot
	ButtonClick
)

func (c Cue) String() string {
	switch c {
	case BallHitBlock:
		return "ball_hit_block"
	case BallHitTable:
		return "ball_hit_table"
	case BallRoll:
		return "ball_roll"
	case BallRollStop:
		return "ball_roll_stop"
	case BlockHitBlock:
		return "block_hit_block"
	case BlockHitTable:
		return "block_hit_table"
	case BallShoot:
		return "ball_shoot"
	case ButtonClick:
		return "button_click"
	default:
		return "unknown"
	}
}

// Onomatopoeia returns a short word shown when the cue plays.
func (c Cue) Onomatopoeia() string {
	switch c {
	case BallHitBlock:
		return "tock"
	case BallHitTable:
		return "thud"
	case BallRoll:
		return "rrr"
	case BlockHitBlock:
		return "clack"
	case BlockHitTable:
		return "scrape"
	case BallShoot:
		return "fwip"
	case ButtonClick:
		return "click"
	default:
		return ""
	}
}

// ForContact returns the cues for entity a touching entity b.
// A ball stops rolling when it hits a block. Block cues only play while active
// is true, so spawning a level stays quiet.
func ForContact(a, b entity.Kind, active bool) []Cue {
	switch a {
	case entity.Ball:
		switch {
		case b.IsBlock():
			return []Cue{BallHitBlock, BallRollStop}
		case b == entity.Table:
			return []Cue{BallHitTable, BallRoll}
		}
	case entity.GoodBlock, entity.BadBlock:
		if !active {
			return nil
		}
		switch {
		case b.IsBlock():
			return []Cue{BlockHitBlock}
		case b == entity.Table:
			return []Cue{BlockHitTable}
		}
	}
	return nil
}

// ForLeftTable returns the cues for an entity leaving the table.
func ForLeftTable(kind entity.Kind) []Cue {
	if kind == entity.Ball {
		return []Cue{BallRollStop}
	}
	return nil
}

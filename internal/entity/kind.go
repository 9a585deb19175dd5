// Package entity defines the closed set of things that can exist on the table.
package entity

// Kind identifies what an entity on the table is.
// Behaviour that depends on the kind switches over these values.
type Kind int

const (
	GoodBlock Kind = iota // Must be knocked off to clear the level
	BadBlock              // Ends the level as a loss if it falls off
	Table                 // The playing surface itself
	Ball                  // A thrown projectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case GoodBlock:
		return "GoodBlock"
	case BadBlock:
		return "BadBlock"
	case Table:
		return "Table"
	case Ball:
		return "Ball"
	default:
		return "Unknown"
	}
}

// IsBlock reports whether the kind is a good or bad block.
func (k Kind) IsBlock() bool {
	return k == GoodBlock || k == BadBlock
}

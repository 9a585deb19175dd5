package level

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/block-knock/internal/entity"
)

// Layout characters.
const (
	GoodBlockChar = 'G'
	BadBlockChar  = 'B'
	EmptyChar     = '.'
)

// Placement is one block of a template, relative to the template's top-left corner.
type Placement struct {
	X, Y int
	Kind entity.Kind
}

// Template is a parsed block layout, ready to be spawned on the table.
type Template struct {
	Width  int
	Height int
	Blocks []Placement
}

// Count returns how many blocks of the given kind the template contains.
func (t Template) Count(kind entity.Kind) int {
	n := 0
	for _, b := range t.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// ParseTemplate builds a Template from rows of layout characters:
//
//	'G' = good block
//	'B' = bad block
//	'.' = empty
//
// Rows may have different lengths; the template is as wide as the longest row.
func ParseTemplate(rows []string) (Template, error) {
	t := Template{Height: len(rows)}

	for y, row := range rows {
		t.Width = max(t.Width, utf8.RuneCountInString(row))

		x := 0
		for _, ch := range row {
			switch ch {
			case GoodBlockChar:
				t.Blocks = append(t.Blocks, Placement{X: x, Y: y, Kind: entity.GoodBlock})
			case BadBlockChar:
				t.Blocks = append(t.Blocks, Placement{X: x, Y: y, Kind: entity.BadBlock})
			case EmptyChar:
			default:
				return Template{}, fmt.Errorf("row %d col %d: unknown layout character %q", y, x, ch)
			}
			x++
		}
	}

	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on error.
// Intended for built-in layouts and tests.
func MustParseTemplate(rows ...string) Template {
	t, err := ParseTemplate(rows)
	if err != nil {
		panic(fmt.Sprintf("level: %v", err))
	}
	return t
}

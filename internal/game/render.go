package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/entity"
	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/level"
)

// cellW is how many screen columns one table cell takes.
const cellW = 2

// Layout rows around the board: two HUD rows, board, aim row, cue row.
const (
	rowsAbove = 2
	rowsBelow = 2
)

// Render draws the table, HUD and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	tc := g.table.Config()
	boardW := tc.Width*cellW + 2
	boardH := tc.Height + 2
	totalH := rowsAbove + boardH + rowsBelow
	needW := core.Max(boardW, g.hudWidth())

	if dst.Width() < needW || dst.Height() < totalH {
		g.renderTooSmall(dst, needW, totalH)
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height()-totalH)/2 + rowsAbove
	board := core.NewRect(ox, oy, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderCues(dst, board.Bottom()+1)

	if g.hud.Title() != "" {
		g.renderOverlay(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCenteredColored(y, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", needW, needH))
}

// hudTexts returns the level line (with the level name), throws and rank.
func (g *Game) hudTexts() (levelText, throwText, rankText string) {
	levelText, throwText, rankText = g.hud.Texts()
	if name := g.engine.Level(g.ctrl.Session().Level).Name; name != "" {
		levelText += " " + name
	}
	return levelText, throwText, rankText
}

// hudWidth is the width the HUD needs: the level line on the first row,
// throws and rank with at least one space between them on the second.
func (g *Game) hudWidth() int {
	levelText, throwText, rankText := g.hudTexts()
	return core.Max(
		utf8.RuneCountInString(levelText),
		utf8.RuneCountInString(throwText)+1+utf8.RuneCountInString(rankText),
	)
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	y := board.Y - rowsAbove
	if !g.hud.Visible() {
		dst.DrawTextCenteredColored(y, Title, core.ColorCyan)
		return
	}

	levelText, throwText, rankText := g.hudTexts()

	// The HUD spans the board, or more when the texts are wider.
	w := core.Max(board.W, g.hudWidth())
	x := (dst.Width() - w) / 2

	dst.DrawTextColored(x, y, levelText, core.ColorCyan)
	dst.DrawText(x, y+1, throwText)
	rx := x + w - utf8.RuneCountInString(rankText)
	dst.DrawTextColored(rx, y+1, rankText, rankColor(g.hud.Rank()))
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)

	tc := g.table.Config()
	cellX := func(x int) int { return board.X + 1 + x*cellW }
	cellY := func(y int) int { return board.Y + 1 + y }

	for y := range tc.Height {
		for x := range tc.Width {
			dst.SetColored(cellX(x), cellY(y), '·', core.ColorGray)
		}
	}

	for _, b := range g.table.Blocks() {
		c := core.ColorGreen
		if b.Kind == entity.BadBlock {
			c = core.ColorRed
		}
		dst.SetColored(cellX(b.X), cellY(b.Y), '█', c)
		dst.SetColored(cellX(b.X)+1, cellY(b.Y), '█', c)
	}

	for _, b := range g.table.Balls() {
		if b.Y >= tc.Height {
			continue
		}
		dst.SetColored(cellX(b.X), cellY(b.Y), '●', core.ColorWhite)
	}

	if g.ctrl.CanThrow() {
		dst.SetColored(cellX(g.aim), board.Bottom(), '▲', core.ColorBrightYellow)
	}
}

func (g *Game) renderCues(dst *core.Screen, y int) {
	var words []string
	for _, c := range g.sounds.Cues() {
		if w := c.Onomatopoeia(); w != "" {
			words = append(words, w)
		}
	}
	if g.sounds.Rolling() {
		words = append(words, "rrr")
	}
	if len(words) == 0 {
		return
	}
	dst.DrawTextCenteredColored(y, "♪ "+strings.Join(words, " "), core.ColorCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	title := g.hud.Title()
	lines := g.hud.Hints()

	var rankLine string
	switch g.hud.Screen() {
	case gameplay.ScreenLevelComplete, gameplay.ScreenGameComplete:
		_, _, rankLine = g.hud.Texts()
	}

	w := utf8.RuneCountInString(title)
	for _, l := range append(lines, rankLine) {
		w = core.Max(w, utf8.RuneCountInString(l))
	}
	w = core.Max(w+6, 30)
	h := len(lines) + 4
	if rankLine != "" {
		h += 2
	}

	box := core.CenteredRect(dst.Width(), dst.Height(), w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, screenColor(g.hud.Screen()))

	y := box.Y + 1
	dst.DrawTextCenteredColored(y, title, screenColor(g.hud.Screen()))
	y += 2
	if rankLine != "" {
		dst.DrawTextCenteredColored(y, rankLine, rankColor(g.hud.Rank()))
		y += 2
	}
	for _, l := range lines {
		dst.DrawTextCentered(y, l)
		y++
	}
}

func rankColor(r level.Rank) core.Color {
	switch r {
	case level.Gold:
		return core.ColorBrightYellow
	case level.Silver:
		return core.ColorWhite
	default:
		return core.ColorOrange
	}
}

func screenColor(s gameplay.Screen) core.Color {
	switch s {
	case gameplay.ScreenLevelComplete, gameplay.ScreenGameComplete:
		return core.ColorBrightGreen
	case gameplay.ScreenGameOver:
		return core.ColorBrightRed
	default:
		return core.ColorYellow
	}
}

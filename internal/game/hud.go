package game

import (
	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/i18n"
	"github.com/vovakirdan/block-knock/internal/level"
)

// HUD is the terminal view the controller talks to. It keeps the visible
// overlay and the formatted HUD lines in the current language.
type HUD struct {
	tr      *i18n.Localizer
	screen  gameplay.Screen
	visible bool

	levelNumber int
	throws      int
	rank        level.Rank

	levelText  string
	throwText  string
	rankText   string
	rankString string
}

// NewHUD creates a hidden HUD with no overlay.
func NewHUD(tr *i18n.Localizer) *HUD {
	return &HUD{tr: tr}
}

// ShowScreen shows the named overlay and hides any other. ScreenNone hides all.
func (h *HUD) ShowScreen(name gameplay.Screen) {
	h.screen = name
}

// ShowHUD shows or hides the HUD.
func (h *HUD) ShowHUD(show bool) {
	h.visible = show
}

// UpdateHUD refreshes the level, throw and rank texts.
func (h *HUD) UpdateHUD(levelNumber int, throws int, rank level.Rank) {
	h.levelNumber = levelNumber
	h.throws = throws
	h.rank = rank
	h.format()
}

// OnLanguageChanged re-renders the HUD texts in the current language.
func (h *HUD) OnLanguageChanged() {
	h.format()
}

func (h *HUD) format() {
	h.rankString = h.tr.Get("Rank " + h.rank.String())
	h.levelText = h.tr.Format("HUD Level", h.levelNumber)
	h.throwText = h.tr.Format("HUD Throws", h.throws)
	h.rankText = h.tr.Format("HUD Rank", h.rankString)
}

// Screen returns the visible overlay.
func (h *HUD) Screen() gameplay.Screen {
	return h.screen
}

// Visible reports whether the HUD is shown.
func (h *HUD) Visible() bool {
	return h.visible
}

// Rank returns the rank last pushed to the HUD.
func (h *HUD) Rank() level.Rank {
	return h.rank
}

// Texts returns the formatted level, throws and rank texts.
func (h *HUD) Texts() (levelText, throwText, rankText string) {
	return h.levelText, h.throwText, h.rankText
}

// RankName returns the localized rank name.
func (h *HUD) RankName() string {
	return h.rankString
}

// Title returns the localized title of the visible overlay.
func (h *HUD) Title() string {
	if h.screen == gameplay.ScreenNone {
		return ""
	}
	return h.tr.Get(string(h.screen))
}

// Hints returns the localized key hints for the visible overlay.
func (h *HUD) Hints() []string {
	var keys []string
	switch h.screen {
	case gameplay.ScreenTutorial:
		return []string{h.tr.Get("Tutorial Hint"), h.tr.Get("Tutorial Controls"), "", h.tr.Get("Hint Start")}
	case gameplay.ScreenLevelComplete:
		keys = []string{"Hint Next", "Hint Retry"}
	case gameplay.ScreenGameComplete:
		keys = []string{"Hint Restart", "Hint Retry"}
	case gameplay.ScreenGameOver:
		keys = []string{"Hint Retry", "Hint Restart"}
	default:
		return nil
	}

	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, h.tr.Get(k))
	}
	return append(out, h.tr.Get("Hint Quit"))
}

var _ gameplay.UI = (*HUD)(nil)

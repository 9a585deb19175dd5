package i18n

import (
	"slices"
	"testing"
)

func TestLanguages(t *testing.T) {
	l := MustNew("en")
	if got := l.Languages(); !slices.Equal(got, []string{"en", "ru"}) {
		t.Errorf("Languages() = %v", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	l := MustNew("xx")
	if l.Language() != Fallback {
		t.Errorf("Language() = %q, want %q", l.Language(), Fallback)
	}
	if l.SetLanguage("zz") {
		t.Error("SetLanguage should report unknown code")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		lang, key, want string
	}{
		{"en", "Rank Gold", "Gold"},
		{"ru", "Rank Gold", "Золото"},
		{"ru", "Hint Restart", "X to start over"}, // missing in ru
		{"en", "No Such Key", "No Such Key"},
	}

	for _, tt := range tests {
		l := MustNew(tt.lang)
		if got := l.Get(tt.key); got != tt.want {
			t.Errorf("%s Get(%q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	l := MustNew("en")
	if got := l.Format("HUD Level", 3); got != "Level: 3" {
		t.Errorf("Format = %q", got)
	}
	if got := l.Format("HUD Rank", l.Get("Rank Silver")); got != "Rank: Silver" {
		t.Errorf("Format = %q", got)
	}
}

func TestNextCycles(t *testing.T) {
	l := MustNew("en")
	if got := l.Next(); got != "ru" {
		t.Errorf("Next() = %q, want ru", got)
	}
	if l.LanguageName() != "Русский" {
		t.Errorf("LanguageName() = %q", l.LanguageName())
	}
	if got := l.Next(); got != "en" {
		t.Errorf("Next() = %q, want en", got)
	}
}

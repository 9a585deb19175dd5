// Package i18n provides the localized strings shown by the HUD and screens.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallback is the language used when a string is missing.
const Fallback = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

type table struct {
	Name    string            `yaml:"name"`
	Strings map[string]string `yaml:"strings"`
}

// Localizer looks up strings in the current language.
type Localizer struct {
	tables  map[string]table
	codes   []string
	current string
}

// New loads the embedded string tables and selects lang.
// An unknown lang falls back to English.
func New(lang string) (*Localizer, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}

	l := &Localizer{tables: make(map[string]table)}
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		var t table
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
		code := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		l.tables[code] = t
		l.codes = append(l.codes, code)
	}
	slices.Sort(l.codes)

	l.SetLanguage(lang)
	return l, nil
}

// MustNew is New for the embedded tables, which are known to parse.
func MustNew(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// Languages returns the available language codes, sorted.
func (l *Localizer) Languages() []string {
	return slices.Clone(l.codes)
}

// Language returns the current language code.
func (l *Localizer) Language() string {
	return l.current
}

// LanguageName returns the display name of the current language.
func (l *Localizer) LanguageName() string {
	return l.tables[l.current].Name
}

// SetLanguage switches language. Returns false and keeps English for unknown codes.
func (l *Localizer) SetLanguage(code string) bool {
	if _, ok := l.tables[code]; ok {
		l.current = code
		return true
	}
	l.current = Fallback
	return false
}

// Next switches to the language after the current one and returns its code.
func (l *Localizer) Next() string {
	i := slices.Index(l.codes, l.current)
	l.current = l.codes[(i+1)%len(l.codes)]
	return l.current
}

// Get returns the string for key, falling back to English and then to the key itself.
func (l *Localizer) Get(key string) string {
	if s, ok := l.tables[l.current].Strings[key]; ok {
		return s
	}
	if s, ok := l.tables[Fallback].Strings[key]; ok {
		return s
	}
	return key
}

// Format returns the string for key with {0}, {1}, ... replaced by args.
func (l *Localizer) Format(key string, args ...any) string {
	s := l.Get(key)
	for i, a := range args {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return s
}

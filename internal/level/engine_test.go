package level

import (
	"errors"
	"testing"

	"github.com/vovakirdan/block-knock/internal/entity"
)

// fakeSpawner records spawn/destroy calls and counts blocks from the template.
type fakeSpawner struct {
	next      Handle
	live      map[Handle]Template
	spawned   []Template
	destroyed []Handle
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{live: make(map[Handle]Template)}
}

func (f *fakeSpawner) Spawn(t Template) Handle {
	f.next++
	f.live[f.next] = t
	f.spawned = append(f.spawned, t)
	return f.next
}

func (f *fakeSpawner) Destroy(h Handle) {
	delete(f.live, h)
	f.destroyed = append(f.destroyed, h)
}

func (f *fakeSpawner) Count(h Handle, kind entity.Kind) int {
	return f.live[h].Count(kind)
}

func testLevels() []Config {
	return []Config{
		{Name: "one", GoldThreshold: 2, SilverThreshold: 4, Layout: MustParseTemplate("G")},
		{Name: "two", GoldThreshold: 3, SilverThreshold: 6, Layout: MustParseTemplate("GG", "B.")},
		{Name: "three", GoldThreshold: 5, SilverThreshold: 5, Layout: MustParseTemplate("GGG", "BGB")},
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeSpawner) {
	t.Helper()
	sp := newFakeSpawner()
	e, err := NewEngine(testLevels(), sp)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e, sp
}

func TestNewEngineRequiresLevels(t *testing.T) {
	_, err := NewEngine(nil, newFakeSpawner())
	if !errors.Is(err, ErrNoLevels) {
		t.Errorf("NewEngine(nil) error = %v, expected ErrNoLevels", err)
	}
}

func TestStartLevelReturnsGoodBlockCount(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		level    int
		expected int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
	}

	for _, tc := range tests {
		if got := e.StartLevel(tc.level); got != tc.expected {
			t.Errorf("StartLevel(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestStartLevelClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected int // good blocks of the clamped level
	}{
		{"zero clamps to first", 0, 1},
		{"negative clamps to first", -5, 1},
		{"one past last clamps to last", 4, 4},
		{"far past last clamps to last", 100, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, sp := newTestEngine(t)
			if got := e.StartLevel(tc.level); got != tc.expected {
				t.Errorf("StartLevel(%d) = %d, expected %d", tc.level, got, tc.expected)
			}
			if len(sp.spawned) != 1 {
				t.Fatalf("expected exactly one spawn, got %d", len(sp.spawned))
			}
		})
	}
}

func TestStartLevelDestroysPreviousContent(t *testing.T) {
	e, sp := newTestEngine(t)

	e.StartLevel(1)
	if len(sp.destroyed) != 0 {
		t.Fatalf("first StartLevel should not destroy anything, destroyed %v", sp.destroyed)
	}

	e.StartLevel(2)
	e.StartLevel(2)

	if len(sp.destroyed) != 2 {
		t.Fatalf("expected 2 destroys, got %d", len(sp.destroyed))
	}
	if len(sp.live) != 1 {
		t.Errorf("expected exactly one live level, got %d", len(sp.live))
	}
}

func TestGetRankThresholds(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		name     string
		level    int
		throws   int
		expected Rank
	}{
		{"no throws is gold", 1, 0, Gold},
		{"below gold", 1, 1, Gold},
		{"exactly gold threshold", 1, 2, Gold},
		{"one over gold", 1, 3, Silver},
		{"exactly silver threshold", 1, 4, Silver},
		{"one over silver", 1, 5, Bronze},
		{"far over silver", 1, 50, Bronze},
		{"level two gold edge", 2, 3, Gold},
		{"level two silver edge", 2, 6, Silver},
		{"level two bronze", 2, 7, Bronze},
		{"equal thresholds gold", 3, 5, Gold},
		{"equal thresholds skip silver", 3, 6, Bronze},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.GetRank(tc.level, tc.throws); got != tc.expected {
				t.Errorf("GetRank(%d, %d) = %v, expected %v", tc.level, tc.throws, got, tc.expected)
			}
		})
	}
}

func TestGetRankDoesNotClamp(t *testing.T) {
	e, _ := newTestEngine(t)

	for _, lvl := range []int{0, 4, -1} {
		t.Run("level", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("GetRank(%d, 1) should panic for an out-of-range level", lvl)
				}
			}()
			e.GetRank(lvl, 1)
		})
	}
}

func TestLevelClamps(t *testing.T) {
	e, _ := newTestEngine(t)

	if got := e.Level(0).Name; got != "one" {
		t.Errorf("Level(0).Name = %q, expected \"one\"", got)
	}
	if got := e.Level(99).Name; got != "three" {
		t.Errorf("Level(99).Name = %q, expected \"three\"", got)
	}
	if e.LevelCount() != 3 {
		t.Errorf("LevelCount() = %d, expected 3", e.LevelCount())
	}
}

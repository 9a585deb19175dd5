package gameplay

import (
	"testing"
	"time"
)

func TestTickSchedulerRunsWhenDue(t *testing.T) {
	s := NewTickScheduler()
	ran := 0
	s.After(100*time.Millisecond, func() { ran++ })

	if fired := s.Advance(99 * time.Millisecond); fired != 0 || ran != 0 {
		t.Fatalf("callback ran early (fired=%d)", fired)
	}
	if fired := s.Advance(time.Millisecond); fired != 1 || ran != 1 {
		t.Fatalf("callback did not run when due (fired=%d)", fired)
	}
	if fired := s.Advance(time.Second); fired != 0 || ran != 1 {
		t.Error("callback ran more than once")
	}
}

func TestTickSchedulerOrder(t *testing.T) {
	s := NewTickScheduler()
	var order []string

	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "first") })
	s.After(100*time.Millisecond, func() { order = append(order, "second") })

	s.Advance(time.Second)

	expected := []string{"first", "second", "late"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestTickSchedulerNestedScheduling(t *testing.T) {
	s := NewTickScheduler()
	ran := 0

	s.After(10*time.Millisecond, func() {
		s.After(10*time.Millisecond, func() { ran++ })
	})

	s.Advance(15 * time.Millisecond)
	if ran != 0 || s.Pending() != 1 {
		t.Fatalf("nested callback should be pending, ran=%d pending=%d", ran, s.Pending())
	}

	s.Advance(5 * time.Millisecond)
	if ran != 1 {
		t.Errorf("nested callback did not run at its due time")
	}
}

func TestTickSchedulerNestedDelayMeasuredFromDueTime(t *testing.T) {
	s := NewTickScheduler()
	var ranAt time.Duration = -1

	s.After(500*time.Millisecond, func() {
		if s.Now() != 500*time.Millisecond {
			t.Errorf("outer callback saw Now() = %v, expected 500ms", s.Now())
		}
		s.After(500*time.Millisecond, func() { ranAt = s.Now() })
	})

	// 400ms ticks: the outer callback is due during the second tick,
	// the nested one during the third.
	s.Advance(400 * time.Millisecond)
	s.Advance(400 * time.Millisecond)
	if ranAt >= 0 {
		t.Fatalf("nested callback ran early at %v", ranAt)
	}

	s.Advance(400 * time.Millisecond)
	if ranAt != time.Second {
		t.Errorf("nested callback ran at %v, expected 1s", ranAt)
	}
	if s.Now() != 1200*time.Millisecond {
		t.Errorf("Now() = %v, expected 1.2s after three ticks", s.Now())
	}
}

func TestTickSchedulerZeroDelay(t *testing.T) {
	s := NewTickScheduler()
	ran := false
	s.After(0, func() { ran = true })

	if ran {
		t.Fatal("After must not run the callback inline")
	}
	s.Advance(0)
	if !ran {
		t.Error("zero-delay callback should run on the next Advance")
	}
	if s.Now() != 0 {
		t.Errorf("Now() = %v, expected 0", s.Now())
	}
}

package sound

// Player plays cues.
type Player interface {
	Play(Cue)
}

// Recent remembers the cues played during the last few ticks so a terminal
// frontend can show them. BallRollStop clears a pending roll.
type Recent struct {
	ttl     int
	entries []recentEntry
	rolling int
	bell    bool
}

type recentEntry struct {
	cue  Cue
	left int
}

// NewRecent creates a Recent that keeps each cue for ttl ticks.
// With bell set, hit cues also ring the terminal bell.
func NewRecent(ttl int, bell bool) *Recent {
	if ttl < 1 {
		ttl = 1
	}
	return &Recent{ttl: ttl, bell: bell}
}

// Play records a cue.
func (r *Recent) Play(c Cue) {
	switch c {
	case BallRoll:
		r.rolling++
		return
	case BallRollStop:
		if r.rolling > 0 {
			r.rolling--
		}
		return
	}
	r.entries = append(r.entries, recentEntry{cue: c, left: r.ttl})
}

// Tick ages recorded cues and forgets expired ones.
func (r *Recent) Tick() {
	kept := r.entries[:0]
	for _, e := range r.entries {
		e.left--
		if e.left > 0 {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// Cues returns the cues still visible, oldest first.
func (r *Recent) Cues() []Cue {
	out := make([]Cue, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.cue
	}
	return out
}

// Rolling reports whether any ball is rolling.
func (r *Recent) Rolling() bool {
	return r.rolling > 0
}

// Reset forgets everything, including rolling balls.
func (r *Recent) Reset() {
	r.entries = r.entries[:0]
	r.rolling = 0
}

// Bell returns the terminal bell if a hit cue arrived this tick and bells are on.
func (r *Recent) Bell() string {
	if !r.bell {
		return ""
	}
	for _, e := range r.entries {
		if e.left == r.ttl && (e.cue == BallHitBlock || e.cue == BlockHitBlock) {
			return "\a"
		}
	}
	return ""
}

var _ Player = (*Recent)(nil)

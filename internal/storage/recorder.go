package storage

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/block-knock/internal/gameplay"
)

// RunRecorder implements gameplay.Recorder for one play session.
// Every result it saves shares the same run ID.
type RunRecorder struct {
	store  *Store
	runID  string
	player string
}

// NewRunRecorder starts a new run for the given player.
func NewRunRecorder(store *Store, player string) *RunRecorder {
	return &RunRecorder{
		store:  store,
		runID:  uuid.NewString(),
		player: player,
	}
}

// RunID returns the ID shared by this run's results.
func (r *RunRecorder) RunID() string {
	return r.runID
}

// RecordResult saves a finished level.
func (r *RunRecorder) RecordResult(res gameplay.Result) error {
	_, err := r.store.SaveResult(ResultEntry{
		RunID:   r.runID,
		Player:  r.player,
		Level:   res.Level,
		Throws:  res.Throws,
		Rank:    res.Rank,
		Outcome: res.Outcome.String(),
		Won:     res.Outcome.Won(),
	})
	return err
}

var _ gameplay.Recorder = (*RunRecorder)(nil)

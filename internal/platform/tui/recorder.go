package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-arcade/internal/storage"
)

// recorder tracks play sessions for one game model and persists their outcome.
// Writes run in the background so a game-over report never stalls a tick.
// It is shared by pointer between copies of the owning GameModel.
type recorder struct {
	gameID string
	store  *storage.Store
	logger *log.Logger
	now    func() time.Time

	mu        sync.Mutex
	startedAt time.Time
	active    bool

	pending sync.WaitGroup
}

func newRecorder(gameID string, store *storage.Store, logger *log.Logger) *recorder {
	return &recorder{
		gameID: gameID,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// begin marks the start of a play session.
func (r *recorder) begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startedAt = r.now()
	r.active = true
}

// end closes the running session and returns its start and length.
func (r *recorder) end() (time.Time, time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return time.Time{}, 0, false
	}
	r.active = false
	return r.startedAt, max(r.now().Sub(r.startedAt), 0), true
}

// finish is the game-over callback. It stores the final score and the
// session length.
func (r *recorder) finish(score int) {
	startedAt, d, ok := r.end()
	if !ok {
		startedAt = r.now()
	}
	r.logger.Info("game over", "game", r.gameID, "score", score, "duration", d)

	if r.store == nil {
		return
	}
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		if _, err := r.store.SaveScore(r.gameID, score); err != nil {
			r.logger.Error("could not save score", "game", r.gameID, "score", score, "error", err)
		}
		if err := r.store.RecordSession(r.gameID, startedAt, d); err != nil {
			r.logger.Error("could not record session", "game", r.gameID, "error", err)
		}
	}()
}

// abandon records the play time of a session left before game over.
func (r *recorder) abandon() {
	startedAt, d, ok := r.end()
	if !ok {
		return
	}
	r.logger.Info("session abandoned", "game", r.gameID, "duration", d)

	if r.store == nil {
		return
	}
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		if err := r.store.RecordSession(r.gameID, startedAt, d); err != nil {
			r.logger.Error("could not record session", "game", r.gameID, "error", err)
		}
	}()
}

// wait blocks until every background write has finished.
func (r *recorder) wait() {
	r.pending.Wait()
}

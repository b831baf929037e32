package sqlite

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into a single callback. SQLite
// touches the database, WAL and shm files in quick succession for one
// logical write; without debouncing every touch would fan out a snapshot.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fn after the quiet interval, replacing any pending
// schedule. Triggers after stop are ignored. The callback runs holding
// the mutex: timer.Stop cannot cancel an AfterFunc that already fired,
// so the stopped check is what keeps a late callback from running, and
// holding the lock makes stop block until an in-flight callback is done.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped {
			return
		}
		fn()
	})
}

// stop cancels any pending callback and rejects further triggers. When
// stop returns, no callback is running and none will run; the caller may
// close whatever the callbacks write to.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package datasource

import (
	"sync"

	"github.com/quillstack/quill/pkg/storage"
)

// Subscription is one registered observer of record snapshots.
type Subscription struct {
	ch   chan []storage.Record
	stop func()
	once sync.Once
}

// Snapshots returns the snapshot channel. The channel holds at most one
// pending snapshot: when a subscriber lags, older snapshots are replaced
// by newer ones, so the latest state is always the next receive. The
// channel is closed by Unsubscribe.
func (s *Subscription) Snapshots() <-chan []storage.Record {
	return s.ch
}

// Unsubscribe removes the subscription from the registry. Idempotent; no
// effect on other subscribers.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.stop)
}

// broadcaster is an explicit observer registry: a set of subscriber
// channels published to under a mutex.
type broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]chan []storage.Record
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan []storage.Record)}
}

func (b *broadcaster) subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan []storage.Record, 1)
	b.subs[id] = ch
	return &Subscription{ch: ch, stop: func() { b.remove(id) }}
}

func (b *broadcaster) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *broadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// publish delivers the snapshot to every current subscriber. Slow
// subscribers are conflated rather than blocked: the stale pending
// snapshot is dropped so the latest one always lands.
func (b *broadcaster) publish(snapshot []storage.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			// The channel is drained and the mutex keeps other publishers
			// out, so this send cannot block.
			ch <- snapshot
		}
	}
}

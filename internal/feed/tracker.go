package feed

import (
	"sync"
	"time"

	"sambatin/internal/events"
	"sambatin/internal/models"
)

// Tracker keeps a live View warm by folding the global notification
// stream into it. The list handler serves snapshots from here between
// full store fetches, the same cache-patching the browser client does.
//
// The view is trusted for at most ttl after a Seed: the hub drops events
// for slow subscribers, so a snapshot can run behind the store. The TTL
// bounds that drift; an expired snapshot misses and the next list goes
// back to the store.
type Tracker struct {
	mu       sync.Mutex
	view     View
	seeded   bool
	seededAt time.Time
	dirty    bool
	limit    int
	ttl      time.Duration

	cancel func()
}

func NewTracker(limit int, ttl time.Duration) *Tracker {
	return &Tracker{limit: limit, ttl: ttl}
}

// Run subscribes to the global feed scope and applies events until
// Stop is called.
func (t *Tracker) Run(hub *events.Hub) {
	ch, cancel := hub.Subscribe(events.ScopePosts)
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()

	go func() {
		for e := range ch {
			t.mu.Lock()
			if t.seeded {
				t.view = Apply(t.view, e)
			} else {
				// 取数和 Seed 之间落进来的事件没法补进快照，
				// 只能把下一次 Seed 判作废，让列表重新取数
				t.dirty = true
			}
			t.mu.Unlock()
		}
	}()
}

// Stop tears the subscription down.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Seed replaces the view with a freshly fetched sambat list. A seed is
// rejected when an event arrived while the tracker was unseeded: that
// event may postdate the fetch, so the fetched list cannot be trusted
// as a base to patch. A seed is also a no-op when a concurrent request
// already seeded: the live view has been patched past the fetch.
func (t *Tracker) Seed(sambats []models.Sambat) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seeded {
		return
	}
	if t.dirty {
		t.dirty = false
		t.seeded = false
		t.view = View{}
		return
	}
	t.view = View{Sambats: append([]models.Sambat{}, sambats...)}
	t.seeded = true
	t.seededAt = time.Now()
}

// Snapshot returns the current list bounded to the tracker's page size,
// and whether the view is seeded and still within its TTL.
func (t *Tracker) Snapshot() ([]models.Sambat, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.seeded {
		return nil, false
	}
	if time.Since(t.seededAt) > t.ttl {
		t.seeded = false
		t.view = View{}
		return nil, false
	}
	sambats := t.view.Sambats
	if len(sambats) > t.limit {
		sambats = sambats[:t.limit]
	}
	return append([]models.Sambat{}, sambats...), true
}

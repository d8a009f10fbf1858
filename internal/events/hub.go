package events

import (
	"log"
	"sync"
)

// 订阅范围：全局帖子流、单帖表情流、单帖回复流
const ScopePosts = "posts"

func ScopeReactions(sambatID string) string { return "reactions:" + sambatID }
func ScopeReplies(sambatID string) string   { return "replies:" + sambatID }

const subscriberBuffer = 16

// Hub fans change notifications out to per-scope subscriber channels.
// Delivery is at-most-once per subscriber: a subscriber that cannot keep
// up has events dropped rather than blocking the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a channel on one scope. The returned cancel func
// tears the subscription down and closes the channel; it is safe to call
// more than once.
func (h *Hub) Subscribe(scope string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[scope] == nil {
		h.subs[scope] = make(map[chan Event]struct{})
	}
	h.subs[scope][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[scope], ch)
			if len(h.subs[scope]) == 0 {
				delete(h.subs, scope)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish routes an event to every scope it belongs to. Post lifecycle
// events go to the global feed; a reaction goes both to the global feed
// (live counter updates on the wall) and to its sambat's own stream;
// replies only to their sambat's stream.
func (h *Hub) Publish(e Event) {
	switch e.Type {
	case PostCreated, PostDeleted:
		h.send(ScopePosts, e)
	case ReactionAdded:
		h.send(ScopePosts, e)
		h.send(ScopeReactions(e.SambatID), e)
	case ReplyAdded:
		h.send(ScopeReplies(e.SambatID), e)
	default:
		log.Printf("hub: dropping event with unknown type %q", e.Type)
	}
}

func (h *Hub) send(scope string, e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[scope] {
		select {
		case ch <- e:
		default:
			// 订阅者消费太慢，丢弃本条
			log.Printf("hub: slow subscriber on %s, event dropped", scope)
		}
	}
}

// SubscriberCount reports how many channels are registered on a scope.
func (h *Hub) SubscriberCount(scope string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[scope])
}

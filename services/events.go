package services

import "sync"

type Topic string

const (
	TopicOrderCompleted Topic = "order_completed"
	TopicDayClosed      Topic = "day_closed"
)

type Event struct {
	Topic   Topic       `json:"topic"`
	Payload interface{} `json:"payload"`
}

// EventBus is a typed in-process publish-subscribe feed. Consumers pull from
// their own channel instead of listening for ad hoc global event names.
type EventBus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[chan Event]struct{})}
}

func (b *EventBus) Subscribe() chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *EventBus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish never blocks; a subscriber that stopped draining loses events
// rather than stalling the caller.
func (b *EventBus) Publish(topic Topic, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- Event{Topic: topic, Payload: payload}:
		default:
		}
	}
}

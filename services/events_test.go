package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversToSubscribers(t *testing.T) {
	bus := NewEventBus()
	first := bus.Subscribe()
	second := bus.Subscribe()

	bus.Publish(TopicOrderCompleted, "INV-20260831-0001")

	for _, ch := range []chan Event{first, second} {
		select {
		case event := <-ch:
			assert.Equal(t, TopicOrderCompleted, event.Topic)
			assert.Equal(t, "INV-20260831-0001", event.Payload)
		case <-time.After(time.Second):
			t.Fatal("expected an event")
		}
	}
}

func TestEventBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	bus.Publish(TopicDayClosed, nil)
}

func TestEventBusDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe()

	for i := 0; i < 100; i++ {
		bus.Publish(TopicOrderCompleted, i)
	}

	// The buffered window holds the earliest events; the rest were dropped
	// instead of stalling the publisher.
	event := <-ch
	require.Equal(t, 0, event.Payload)
}

package events_test

import (
	"testing"
	"time"

	"github.com/eststy/eststy/internal/events"
	"github.com/stretchr/testify/assert"
)

func Test_Bus_DeliversSynchronouslyInOrder(t *testing.T) {
	bus := events.NewBus()

	var got []string
	bus.Subscribe(func(e events.Event) { got = append(got, "first:"+string(e.Type)) })
	bus.Subscribe(func(e events.Event) { got = append(got, "second:"+string(e.Type)) })

	bus.Publish(events.Event{Type: events.TypeCartUpdated, At: time.Now()})

	// Synchronous delivery: both handlers ran before Publish returned.
	assert.Equal(t, []string{"first:cart.updated", "second:cart.updated"}, got)
}

func Test_Bus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()

	var count int
	unsubscribe := bus.Subscribe(func(events.Event) { count++ })

	bus.Publish(events.Event{Type: events.TypeCartCleared})
	unsubscribe()
	bus.Publish(events.Event{Type: events.TypeCartCleared})

	assert.Equal(t, 1, count, "unsubscribed handler must not receive events")
}

func Test_Bus_PublishWithNoSubscribers(t *testing.T) {
	bus := events.NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(events.Event{Type: events.TypeOrderPlaced})
	})
}

package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_ReachesOnlyTheAccount(t *testing.T) {
	bus := NewBus()
	mine := bus.Subscribe("a")
	theirs := bus.Subscribe("b")

	bus.Publish("a", Event{Resource: "task", ID: "t1"})

	select {
	case e := <-mine:
		assert.Equal(t, Event{Resource: "task", ID: "t1"}, e)
	default:
		t.Fatal("expected an event")
	}
	assert.Empty(t, theirs)
}

func TestPublish_DropsWhenFull(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe("a")

	for i := 0; i < cap(ch)+5; i++ {
		bus.Publish("a", Event{Resource: "task"})
	}
	assert.Len(t, ch, cap(ch))
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe("a")
	require.Equal(t, 1, bus.Subscribers("a"))

	bus.Unsubscribe("a", ch)
	bus.Unsubscribe("a", ch)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.Subscribers("a"))

	bus.Publish("a", Event{Resource: "task"})
}

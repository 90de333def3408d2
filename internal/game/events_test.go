package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSubscriber struct {
	events []GameEvent
}

func (s *capturingSubscriber) OnEvent(event GameEvent) {
	s.events = append(s.events, event)
}

func (s *capturingSubscriber) byType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range s.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

func TestRevealPublishesCellsRevealed(t *testing.T) {
	b := newTestBoard(3, 3, coord{0, 0})
	sub := &capturingSubscriber{}
	bus := NewEventBus()
	bus.Subscribe(sub)
	b.SetEventBus(bus)

	b.Reveal(2, 2)

	events := sub.byType(EventTypeCellsRevealed)
	require.Len(t, events, 1)
	ev := events[0].(CellsRevealedEvent)
	assert.Equal(t, 2, ev.Row)
	assert.Equal(t, 2, ev.Col)
	assert.Equal(t, 8, ev.Count, "zero region plus numbered border")
}

func TestNoOpRevealPublishesNothing(t *testing.T) {
	b := newTestBoard(3, 3, coord{0, 0})
	sub := &capturingSubscriber{}
	bus := NewEventBus()
	bus.Subscribe(sub)
	b.SetEventBus(bus)

	b.Reveal(-1, 0)
	b.ToggleFlag(0, 0)
	b.Reveal(0, 0) // flagged, no-op

	assert.Empty(t, sub.byType(EventTypeCellsRevealed))
}

func TestGameOverEventCarriesResult(t *testing.T) {
	b := newTestBoard(2, 2, coord{0, 0})
	sub := &capturingSubscriber{}
	bus := NewEventBus()
	bus.Subscribe(sub)
	b.SetEventBus(bus)

	b.Reveal(0, 0)

	events := sub.byType(EventTypeGameOver)
	require.Len(t, events, 1)
	assert.Equal(t, Lost, events[0].(GameOverEvent).Result)
}

func TestFlagToggledEventTracksRemaining(t *testing.T) {
	b := newTestBoard(2, 2, coord{0, 0})
	sub := &capturingSubscriber{}
	bus := NewEventBus()
	bus.Subscribe(sub)
	b.SetEventBus(bus)

	b.ToggleFlag(1, 1)
	b.ToggleFlag(1, 0)

	events := sub.byType(EventTypeFlagToggled)
	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].(FlagToggledEvent).Remaining)
	assert.Equal(t, -1, events[1].(FlagToggledEvent).Remaining)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := newTestBoard(2, 2, coord{0, 0})
	sub := &capturingSubscriber{}
	bus := NewEventBus()
	bus.Subscribe(sub)
	b.SetEventBus(bus)

	b.ToggleFlag(1, 1)
	bus.Unsubscribe(sub)
	b.ToggleFlag(1, 1)

	assert.Len(t, sub.events, 1)
}

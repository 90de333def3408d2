package game

import "time"

// EventType identifies a game domain event.
type EventType string

const (
	EventTypeCellsRevealed EventType = "cells_revealed"
	EventTypeFlagToggled   EventType = "flag_toggled"
	EventTypeGameOver      EventType = "game_over"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is any event published by the board during a mutating call.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// CellsRevealedEvent is published after a Reveal call that changed the
// board. Count includes every cell uncovered by the flood fill, not just
// the one the player targeted.
type CellsRevealedEvent struct {
	Row       int
	Col       int
	Count     int
	timestamp time.Time
}

func (e CellsRevealedEvent) EventType() EventType { return EventTypeCellsRevealed }
func (e CellsRevealedEvent) Timestamp() time.Time { return e.timestamp }

// NewCellsRevealedEvent creates a new cells revealed event.
func NewCellsRevealedEvent(row, col, count int) CellsRevealedEvent {
	return CellsRevealedEvent{Row: row, Col: col, Count: count, timestamp: time.Now()}
}

// FlagToggledEvent is published after a ToggleFlag call that changed the
// board. Remaining carries the unclamped remaining-mine counter.
type FlagToggledEvent struct {
	Row       int
	Col       int
	Flagged   bool
	Remaining int
	timestamp time.Time
}

func (e FlagToggledEvent) EventType() EventType { return EventTypeFlagToggled }
func (e FlagToggledEvent) Timestamp() time.Time { return e.timestamp }

// NewFlagToggledEvent creates a new flag toggled event.
func NewFlagToggledEvent(row, col int, flagged bool, remaining int) FlagToggledEvent {
	return FlagToggledEvent{Row: row, Col: col, Flagged: flagged, Remaining: remaining, timestamp: time.Now()}
}

// GameOverEvent is published when the board leaves Playing.
type GameOverEvent struct {
	Result    Status // Won or Lost
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event.
func NewGameOverEvent(result Status) GameOverEvent {
	return GameOverEvent{Result: result, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous
// and in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

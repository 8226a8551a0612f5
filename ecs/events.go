package ecs

import "github.com/milk9111/tilewalker/character"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTransitStarted  = "transit_started"
	EventTransitFinished = "transit_finished"
	EventLevelLoaded     = "level_loaded"
)

// TransitEvent is emitted by the character system when a tile transit
// starts or lands.
type TransitEvent struct {
	Entity      Entity
	Orientation character.Orientation
	X           float64
	Y           float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

package ecs

import "github.com/milk9111/bouncebox/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventBoundaryHit = "boundary_hit"

// BoundaryHit is pushed when an entity touches a window edge.
type BoundaryHit struct {
	Entity Entity
	Edge   component.Edge
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

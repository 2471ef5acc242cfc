package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventCoinCollected = "coin_collected"
	EventGameWon       = "game_won"
	EventWallContact   = "wall_contact"
)

// CoinCollectedEvent is emitted when the player captures a coin.
type CoinCollectedEvent struct {
	Coin      Entity
	Collected int
	Total     int
}

// WallContactEvent is emitted once per wall the player box overlaps.
type WallContactEvent struct {
	Wall Entity
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

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

package domain

import "time"

const (
	EventJoined    = "queue.joined"
	EventCalled    = "queue.called"
	EventCompleted = "queue.completed"
)

// QueueEvent is published to the lifecycle event stream whenever an entry
// changes state. Keyed by business so per-business ordering is preserved.
type QueueEvent struct {
	Type         string    `json:"type"`
	QueueID      string    `json:"queue_id"`
	BusinessID   string    `json:"business_id"`
	CustomerName string    `json:"customer_name"`
	Position     int       `json:"position"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

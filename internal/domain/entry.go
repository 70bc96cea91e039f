package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusServing Status = "serving"
	StatusDone    Status = "done"
)

// QueueEntry is one customer's place in a business's queue. Position is a
// dense 1-based rank among the waiting entries of the same business and is
// frozen once the entry leaves the waiting state.
type QueueEntry struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"business_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Position     int       `json:"position"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

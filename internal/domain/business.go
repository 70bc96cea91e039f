package domain

import (
	"time"

	"github.com/google/uuid"
)

type Business struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location,omitempty"`
	AvgServiceTime int       `json:"avg_service_time"` // minutes per customer
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

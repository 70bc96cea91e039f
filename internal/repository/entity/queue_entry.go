package entity

import (
	"time"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/google/uuid"
)

type QueueEntry struct {
	Id           uuid.UUID `gorm:"primary_key"`
	BusinessId   uuid.UUID
	CustomerName string
	PhoneNumber  string
	Position     int
	Status       string
	CreatedAt    time.Time
}

func (QueueEntry) TableName() string {
	return "queue_entries"
}

func (e QueueEntry) ToDomain() domain.QueueEntry {
	return domain.QueueEntry{
		ID:           e.Id,
		BusinessID:   e.BusinessId,
		CustomerName: e.CustomerName,
		PhoneNumber:  e.PhoneNumber,
		Position:     e.Position,
		Status:       domain.Status(e.Status),
		CreatedAt:    e.CreatedAt,
	}
}

func FromDomain(d domain.QueueEntry) QueueEntry {
	return QueueEntry{
		Id:           d.ID,
		BusinessId:   d.BusinessID,
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		Position:     d.Position,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

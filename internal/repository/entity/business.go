package entity

import (
	"time"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/google/uuid"
)

type Business struct {
	Id             uuid.UUID `gorm:"primary_key"`
	Name           string
	Location       string
	AvgServiceTime int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Business) TableName() string {
	return "businesses"
}

func (b Business) ToDomain() domain.Business {
	return domain.Business{
		ID:             b.Id,
		Name:           b.Name,
		Location:       b.Location,
		AvgServiceTime: b.AvgServiceTime,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

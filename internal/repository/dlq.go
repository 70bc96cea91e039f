package repository

import (
	"context"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/Marcelofury/SmartQueue/internal/repository/entity"
	"gorm.io/gorm"
)

type dlqRepository struct {
	db *gorm.DB
}

func NewDlqRepository(db *gorm.DB) *dlqRepository {
	return &dlqRepository{
		db: db,
	}
}

func (dr *dlqRepository) InsertDLQ(ctx context.Context, km domain.KafkaMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return gorm.G[entity.EventDlq](dr.db).Create(ctx, &entity.EventDlq{
		Topic:         km.Topic,
		Key:           km.Key,
		Payload:       km.Payload,
		AttemptCount:  km.Attempts,
		LastAttemptAt: time.Now(),
	})
}

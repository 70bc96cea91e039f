package queue

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"
	"github.com/google/uuid"
)

type QueueHandler struct {
	queueService lifecycleService
}

type lifecycleService interface {
	Join(ctx context.Context, in queueService.JoinInput) (queueService.JoinResult, error)
	CallNext(ctx context.Context, businessID uuid.UUID) (queueService.CallNextResult, error)
	Complete(ctx context.Context, queueID uuid.UUID) (domain.QueueEntry, error)
	Status(ctx context.Context, queueID uuid.UUID) (queueService.EntryStatus, error)
	ListWaiting(ctx context.Context, businessID uuid.UUID) ([]queueService.WaitingEntry, error)
}

func New(queueService lifecycleService) *QueueHandler {
	return &QueueHandler{
		queueService: queueService,
	}
}

// Package queue implements the queue ordering and state engine: position
// assignment, the waiting -> serving -> done lifecycle, dense renumbering of
// the waiting set, and wait-time estimates.
package queue

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/Marcelofury/SmartQueue/internal/lock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type queueService struct {
	businessRepository businessRepository
	queueRepository    queueRepository
	notifier           notifier
	events             eventPublisher
	locker             lock.Locker
	logger             *logrus.Logger
}

type businessRepository interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (domain.Business, error)
}

type queueRepository interface {
	CountWaiting(ctx context.Context, businessID uuid.UUID) (int64, error)
	Insert(ctx context.Context, entry domain.QueueEntry) (domain.QueueEntry, error)
	Get(ctx context.Context, id uuid.UUID) (domain.QueueEntry, error)
	HeadWaiting(ctx context.Context, businessID uuid.UUID) (domain.QueueEntry, error)
	ListWaiting(ctx context.Context, businessID uuid.UUID) ([]domain.QueueEntry, error)
	ListWaitingByArrival(ctx context.Context, businessID uuid.UUID) ([]domain.QueueEntry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (int, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	FindLatestByPhone(ctx context.Context, phoneNumber string) (domain.QueueEntry, error)
}

type notifier interface {
	Enabled() bool
	SendTurnNotification(ctx context.Context, phoneNumber, customerName, businessName string) error
	SendJoinConfirmation(ctx context.Context, phoneNumber, customerName string, position, estimatedWait int) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.QueueEvent)
}

func NewQueueService(
	businessRepository businessRepository,
	queueRepository queueRepository,
	notifier notifier,
	events eventPublisher,
	locker lock.Locker,
	logger *logrus.Logger,
) *queueService {
	return &queueService{
		businessRepository: businessRepository,
		queueRepository:    queueRepository,
		notifier:           notifier,
		events:             events,
		locker:             locker,
		logger:             logger,
	}
}

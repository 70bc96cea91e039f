package repository

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/Marcelofury/SmartQueue/internal/repository/entity"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type queueRepository struct {
	db *gorm.DB
}

func NewQueueRepository(db *gorm.DB) *queueRepository {
	return &queueRepository{
		db: db,
	}
}

func (qr *queueRepository) CountWaiting(ctx context.Context, businessID uuid.UUID) (int64, error) {
	count, err := gorm.G[entity.QueueEntry](qr.db).
		Where("business_id = ? AND status = ?", businessID, domain.StatusWaiting).
		Count(ctx, "id")
	if err != nil {
		return 0, errors.Wrap(err, "failed to count waiting entries")
	}

	return count, nil
}

func (qr *queueRepository) Insert(ctx context.Context, d domain.QueueEntry) (domain.QueueEntry, error) {
	e := entity.FromDomain(d)
	if err := gorm.G[entity.QueueEntry](qr.db).Create(ctx, &e); err != nil {
		return domain.QueueEntry{}, errors.Wrap(err, "failed to insert queue entry")
	}

	return e.ToDomain(), nil
}

func (qr *queueRepository) Get(ctx context.Context, id uuid.UUID) (domain.QueueEntry, error) {
	e, err := gorm.G[entity.QueueEntry](qr.db).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QueueEntry{}, constant.EntryNotFoundErr
		}
		return domain.QueueEntry{}, errors.Wrap(err, "failed to get queue entry")
	}

	return e.ToDomain(), nil
}

// HeadWaiting returns the waiting entry next in line for the business:
// lowest position, earliest arrival on ties.
func (qr *queueRepository) HeadWaiting(ctx context.Context, businessID uuid.UUID) (domain.QueueEntry, error) {
	e, err := gorm.G[entity.QueueEntry](qr.db).
		Where("business_id = ? AND status = ?", businessID, domain.StatusWaiting).
		Order("position ASC, created_at ASC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QueueEntry{}, constant.EntryNotFoundErr
		}
		return domain.QueueEntry{}, errors.Wrap(err, "failed to get head of queue")
	}

	return e.ToDomain(), nil
}

func (qr *queueRepository) ListWaiting(ctx context.Context, businessID uuid.UUID) ([]domain.QueueEntry, error) {
	return qr.listWaiting(ctx, businessID, "position ASC")
}

// ListWaitingByArrival is the reconciliation read: the waiting set in FIFO
// order, which defines the dense 1..N numbering.
func (qr *queueRepository) ListWaitingByArrival(ctx context.Context, businessID uuid.UUID) ([]domain.QueueEntry, error) {
	return qr.listWaiting(ctx, businessID, "created_at ASC")
}

func (qr *queueRepository) listWaiting(ctx context.Context, businessID uuid.UUID, order string) ([]domain.QueueEntry, error) {
	dbEntries, err := gorm.G[entity.QueueEntry](qr.db).
		Where("business_id = ? AND status = ?", businessID, domain.StatusWaiting).
		Order(order).
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waiting entries")
	}

	entries := make([]domain.QueueEntry, 0, len(dbEntries))
	for _, e := range dbEntries {
		entries = append(entries, e.ToDomain())
	}

	return entries, nil
}

func (qr *queueRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (int, error) {
	rowsAffected, err := gorm.G[entity.QueueEntry](qr.db).
		Where("id = ?", id).
		Update(ctx, "status", string(status))
	if err != nil {
		return 0, errors.Wrap(err, "failed to update entry status")
	}

	return rowsAffected, nil
}

func (qr *queueRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	if _, err := gorm.G[entity.QueueEntry](qr.db).
		Where("id = ?", id).
		Update(ctx, "position", position); err != nil {
		return errors.Wrap(err, "failed to update entry position")
	}

	return nil
}

// FindLatestByPhone returns the most recent waiting or serving entry for a
// phone number, used by the USSD position check.
func (qr *queueRepository) FindLatestByPhone(ctx context.Context, phoneNumber string) (domain.QueueEntry, error) {
	e, err := gorm.G[entity.QueueEntry](qr.db).
		Where("phone_number = ? AND status IN ?", phoneNumber, []string{string(domain.StatusWaiting), string(domain.StatusServing)}).
		Order("created_at DESC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QueueEntry{}, constant.EntryNotFoundErr
		}
		return domain.QueueEntry{}, errors.Wrap(err, "failed to find entry by phone")
	}

	return e.ToDomain(), nil
}

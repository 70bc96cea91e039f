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

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *businessRepository {
	return &businessRepository{
		db: db,
	}
}

func (br *businessRepository) GetBusiness(ctx context.Context, id uuid.UUID) (domain.Business, error) {
	business, err := gorm.G[entity.Business](br.db).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Business{}, constant.BusinessNotFoundErr
		}
		return domain.Business{}, errors.Wrap(err, "failed to get business")
	}

	return business.ToDomain(), nil
}

func (br *businessRepository) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, int64, error) {
	total, err := gorm.G[entity.Business](br.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count businesses")
	}

	dbBusinesses, err := gorm.G[entity.Business](br.db).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]domain.Business, 0, len(dbBusinesses))
	for _, b := range dbBusinesses {
		businesses = append(businesses, b.ToDomain())
	}

	return businesses, total, nil
}

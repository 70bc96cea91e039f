package business

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
)

type businessService struct {
	businessRepository businessRepository
}

type businessRepository interface {
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, int64, error)
}

func NewBusinessService(businessRepository businessRepository) *businessService {
	return &businessService{
		businessRepository: businessRepository,
	}
}

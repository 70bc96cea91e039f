package business

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
)

func (bs *businessService) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, int64, error) {
	return bs.businessRepository.ListBusinesses(ctx, limit, offset)
}

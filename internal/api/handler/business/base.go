package business

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
)

type BusinessHandler struct {
	businessService businessService
}

type businessService interface {
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, int64, error)
}

func New(businessService businessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

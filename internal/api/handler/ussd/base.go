package ussd

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/domain"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"
)

// UssdHandler drives the text-menu transport. Every reply starts with CON
// (session continues) or END (terminal screen), per the Africa's Talking
// USSD protocol.
type UssdHandler struct {
	queueService    lifecycleService
	businessService businessService
}

type lifecycleService interface {
	Join(ctx context.Context, in queueService.JoinInput) (queueService.JoinResult, error)
	ActiveEntryByPhone(ctx context.Context, phoneNumber string) (queueService.EntryStatus, error)
}

type businessService interface {
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, int64, error)
}

func New(queueService lifecycleService, businessService businessService) *UssdHandler {
	return &UssdHandler{
		queueService:    queueService,
		businessService: businessService,
	}
}

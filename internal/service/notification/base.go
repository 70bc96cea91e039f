package notification

import (
	"github.com/Marcelofury/SmartQueue/internal/provider"
	"github.com/sirupsen/logrus"
)

type notificationService struct {
	provider provider.SMSProvider
	logger   *logrus.Logger
}

func NewNotificationService(provider provider.SMSProvider, logger *logrus.Logger) *notificationService {
	return &notificationService{
		provider: provider,
		logger:   logger,
	}
}

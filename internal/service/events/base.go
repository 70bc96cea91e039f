package events

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type eventService struct {
	dlqRepository dlqRepository
	logger        *logrus.Logger
	kafkaWriter   *kafka.Writer
	workChan      chan domain.KafkaMessage
}

type dlqRepository interface {
	InsertDLQ(ctx context.Context, km domain.KafkaMessage) error
}

func NewEventService(
	dlqRepo dlqRepository,
	logger *logrus.Logger,
	kafkaWriter *kafka.Writer,
) *eventService {
	return &eventService{
		dlqRepository: dlqRepo,
		logger:        logger,
		kafkaWriter:   kafkaWriter,
		workChan:      make(chan domain.KafkaMessage, constant.KafkaWorkerBufSize),
	}
}

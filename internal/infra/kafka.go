package infra

import (
	"fmt"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/config"
	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/segmentio/kafka-go"
)

func NewKafkaWriter(cfg config.Kafka, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // workers perform sync writes with timeout + retries
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    1024,
	}
}

package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Publish hands a lifecycle event to the background producer workers.
// It never blocks a queue operation: if the channel is full the event is
// persisted to event_dlq synchronously instead.
func (es *eventService) Publish(ctx context.Context, ev domain.QueueEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		es.logger.Error(errors.Wrap(err, "failed to marshal queue event"))
		return
	}

	kmsg := domain.KafkaMessage{
		Key:      ev.BusinessID,
		Payload:  payload,
		Topic:    constant.TopicQueueEvents,
		Attempts: 0,
	}

	select {
	case es.workChan <- kmsg:
		// enqueued successfully
	default:
		// worker queue full; fail-safe: persist to event_dlq synchronously (fast insert)
		if err := es.dlqRepository.InsertDLQ(ctx, kmsg); err != nil {
			es.logger.Error(errors.Wrap(err, "CRITICAL: dlq insert failed"))
		}
	}
}

// ProduceMessages drains the work channel and writes to kafka with bounded
// retries; exhausted messages land in event_dlq for later replay.
func (es *eventService) ProduceMessages(workerID int) {
	for km := range es.workChan {
		success := false
		for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
			err := es.kafkaWriter.WriteMessages(ctx, kafka.Message{
				Key:   []byte(km.Key),
				Value: km.Payload,
				Time:  time.Now(),
			})
			cancel()
			if err == nil {
				success = true
				break
			}
			es.logger.Warnf("kafka worker %d: write attempt %d failed: %v", workerID, attempt+1, err)
			time.Sleep(constant.KafkaRetryBackoff * time.Duration(attempt+1))
		}
		if !success {
			km.Attempts += constant.KafkaWriteRetries
			if err := es.dlqRepository.InsertDLQ(context.Background(), km); err != nil {
				es.logger.Errorf("kafka worker %d: failed to insert dlq: %v", workerID, err)
			}
		}
	}
}

// Close stops the producer workers after the channel drains.
func (es *eventService) Close() {
	close(es.workChan)
}

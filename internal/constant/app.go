package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicQueueEvents   = "queue.events"
	KafkaProducerAcks  = kafka.RequireAll
	KafkaWriteTimeout  = 5 * time.Second
	KafkaWriteWorkers  = 4
	KafkaWorkerBufSize = 10000 // capacity of in-memory channel; tune by memory and expected bursts
	KafkaWriteRetries  = 3
	KafkaRetryBackoff  = 500 * time.Millisecond

	// DefaultAvgServiceTime is assumed for businesses without a configured
	// average, in minutes per customer.
	DefaultAvgServiceTime = 15
	WaitTimeUnit          = "minutes"

	LockKeyPrefix     = "smartqueue:lock:"
	LockTTL           = 5 * time.Second
	LockRetryInterval = 50 * time.Millisecond

	UssdBusinessPageSize = 5
)

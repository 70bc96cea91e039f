package entity

import "time"

type EventDlq struct {
	Topic         string
	Key           string
	Payload       []byte
	AttemptCount  int
	LastAttemptAt time.Time
}

func (EventDlq) TableName() string {
	return "event_dlq"
}

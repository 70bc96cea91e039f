package domain

// KafkaMessage is a pending event write. Attempts counts delivery tries so
// the dead letter row records how hard the message was pushed.
type KafkaMessage struct {
	Key      string
	Payload  []byte
	Topic    string
	Attempts int
}

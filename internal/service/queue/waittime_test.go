package queue_test

import (
	"testing"

	"github.com/Marcelofury/SmartQueue/internal/service/queue"
	"github.com/stretchr/testify/assert"
)

func TestEstimateWaitHeadOfQueueIsZero(t *testing.T) {
	for _, avg := range []int{0, 1, 10, 15, 60} {
		assert.Equal(t, 0, queue.EstimateWait(1, avg))
	}
}

func TestEstimateWaitScalesWithPosition(t *testing.T) {
	assert.Equal(t, 10, queue.EstimateWait(2, 10))
	assert.Equal(t, 30, queue.EstimateWait(4, 10))
	assert.Equal(t, 28, queue.EstimateWait(3, 14))
}

func TestEstimateWaitFormula(t *testing.T) {
	for position := 1; position <= 20; position++ {
		for _, avg := range []int{5, 15, 45} {
			assert.Equal(t, (position-1)*avg, queue.EstimateWait(position, avg))
		}
	}
}

package queue

import (
	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
)

// EstimateWait returns the expected wait in minutes for a queue position:
// everyone ahead of you times the business's average service time. The head
// of the queue (position 1) waits 0.
func EstimateWait(position, avgServiceTime int) int {
	return (position - 1) * avgServiceTime
}

// serviceTime defaults businesses without a configured average.
func serviceTime(b domain.Business) int {
	if b.AvgServiceTime <= 0 {
		return constant.DefaultAvgServiceTime
	}
	return b.AvgServiceTime
}

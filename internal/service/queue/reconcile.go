package queue

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reconcile rewrites the positions of a business's waiting entries to their
// 1-based rank in arrival order. Callers must hold the business lock. Updates
// are per-row, not transactional: a mid-sequence failure leaves a temporary
// gap that the next successful reconcile repairs, so the error must surface.
func (qs *queueService) reconcile(ctx context.Context, businessID uuid.UUID) error {
	waiting, err := qs.queueRepository.ListWaitingByArrival(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "reconcile: failed to read waiting set")
	}

	for i, entry := range waiting {
		rank := i + 1
		if entry.Position == rank {
			continue
		}
		if err := qs.queueRepository.UpdatePosition(ctx, entry.ID, rank); err != nil {
			return errors.Wrapf(err, "reconcile: failed to renumber entry %s", entry.ID)
		}
	}

	return nil
}

package queue

import (
	"context"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type JoinInput struct {
	BusinessID   uuid.UUID
	CustomerName string
	PhoneNumber  string
	// NotifyJoin sends a confirmation SMS after a successful join; set by
	// the USSD flow where the customer has no other feedback channel.
	NotifyJoin bool
}

type JoinResult struct {
	Entry         domain.QueueEntry
	BusinessName  string
	EstimatedWait int
}

type CallNextResult struct {
	Entry domain.QueueEntry
	// SmsSent reports whether a notification channel was active, not
	// whether delivery succeeded; delivery is fire-and-forget.
	SmsSent bool
}

type EntryStatus struct {
	Entry         domain.QueueEntry
	BusinessName  string
	EstimatedWait int
}

type WaitingEntry struct {
	domain.QueueEntry
	EstimatedWait int `json:"estimated_wait_time"`
}

// Join appends a customer to the tail of a business's queue. The
// count-then-insert sequence runs under the per-business lock so concurrent
// joins cannot compute the same position.
func (qs *queueService) Join(ctx context.Context, in JoinInput) (JoinResult, error) {
	if in.BusinessID == uuid.Nil || in.CustomerName == "" || in.PhoneNumber == "" {
		return JoinResult{}, constant.MissingFieldsErr
	}

	business, err := qs.businessRepository.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return JoinResult{}, err
	}

	release, err := qs.locker.Acquire(ctx, in.BusinessID.String())
	if err != nil {
		return JoinResult{}, errors.Wrap(err, "join: failed to lock business queue")
	}
	defer release()

	count, err := qs.queueRepository.CountWaiting(ctx, in.BusinessID)
	if err != nil {
		return JoinResult{}, err
	}
	position := int(count) + 1

	entry, err := qs.queueRepository.Insert(ctx, domain.QueueEntry{
		ID:           uuid.New(),
		BusinessID:   in.BusinessID,
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		Position:     position,
		Status:       domain.StatusWaiting,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return JoinResult{}, err
	}

	estimatedWait := EstimateWait(position, serviceTime(business))

	if in.NotifyJoin && qs.notifier.Enabled() {
		if err := qs.notifier.SendJoinConfirmation(ctx, entry.PhoneNumber, entry.CustomerName, position, estimatedWait); err != nil {
			qs.logger.Warnf("join confirmation sms failed for %s: %v", entry.PhoneNumber, err)
		}
	}

	qs.events.Publish(ctx, qs.event(domain.EventJoined, entry))

	return JoinResult{
		Entry:         entry,
		BusinessName:  business.Name,
		EstimatedWait: estimatedWait,
	}, nil
}

// CallNext moves the head of the waiting queue to serving, renumbers the
// remaining waiting entries and notifies the called customer.
func (qs *queueService) CallNext(ctx context.Context, businessID uuid.UUID) (CallNextResult, error) {
	business, err := qs.businessRepository.GetBusiness(ctx, businessID)
	if err != nil {
		return CallNextResult{}, err
	}

	release, err := qs.locker.Acquire(ctx, businessID.String())
	if err != nil {
		return CallNextResult{}, errors.Wrap(err, "call next: failed to lock business queue")
	}
	defer release()

	next, err := qs.queueRepository.HeadWaiting(ctx, businessID)
	if err != nil {
		if errors.Is(err, constant.EntryNotFoundErr) {
			return CallNextResult{}, constant.EmptyQueueErr
		}
		return CallNextResult{}, err
	}

	rows, err := qs.queueRepository.UpdateStatus(ctx, next.ID, domain.StatusServing)
	if err != nil {
		return CallNextResult{}, err
	}
	if rows == 0 {
		return CallNextResult{}, constant.EmptyQueueErr
	}
	next.Status = domain.StatusServing

	if err := qs.reconcile(ctx, businessID); err != nil {
		return CallNextResult{}, err
	}

	if qs.notifier.Enabled() {
		if err := qs.notifier.SendTurnNotification(ctx, next.PhoneNumber, next.CustomerName, business.Name); err != nil {
			qs.logger.Warnf("turn notification sms failed for %s: %v", next.PhoneNumber, err)
		}
	}

	qs.events.Publish(ctx, qs.event(domain.EventCalled, next))

	return CallNextResult{
		Entry:   next,
		SmsSent: qs.notifier.Enabled(),
	}, nil
}

// Complete marks an entry done regardless of its prior status. Completing a
// still-waiting entry removes it from the waiting set, so that path also
// renumbers the remainder. Completing an already done entry is a no-op.
func (qs *queueService) Complete(ctx context.Context, queueID uuid.UUID) (domain.QueueEntry, error) {
	entry, err := qs.queueRepository.Get(ctx, queueID)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	release, err := qs.locker.Acquire(ctx, entry.BusinessID.String())
	if err != nil {
		return domain.QueueEntry{}, errors.Wrap(err, "complete: failed to lock business queue")
	}
	defer release()

	rows, err := qs.queueRepository.UpdateStatus(ctx, queueID, domain.StatusDone)
	if err != nil {
		return domain.QueueEntry{}, err
	}
	if rows == 0 {
		return domain.QueueEntry{}, constant.EntryNotFoundErr
	}
	wasWaiting := entry.Status == domain.StatusWaiting
	entry.Status = domain.StatusDone

	if wasWaiting {
		if err := qs.reconcile(ctx, entry.BusinessID); err != nil {
			return domain.QueueEntry{}, err
		}
	}

	qs.events.Publish(ctx, qs.event(domain.EventCompleted, entry))

	return entry, nil
}

// Status reports an entry with a live wait estimate. Entries that are being
// served or are done wait 0 regardless of their frozen position.
func (qs *queueService) Status(ctx context.Context, queueID uuid.UUID) (EntryStatus, error) {
	entry, err := qs.queueRepository.Get(ctx, queueID)
	if err != nil {
		return EntryStatus{}, err
	}

	business, err := qs.businessRepository.GetBusiness(ctx, entry.BusinessID)
	if err != nil {
		return EntryStatus{}, err
	}

	return EntryStatus{
		Entry:         entry,
		BusinessName:  business.Name,
		EstimatedWait: qs.estimateFor(entry, business),
	}, nil
}

// ListWaiting returns a business's waiting entries in position order, each
// annotated with its wait estimate.
func (qs *queueService) ListWaiting(ctx context.Context, businessID uuid.UUID) ([]WaitingEntry, error) {
	entries, err := qs.queueRepository.ListWaiting(ctx, businessID)
	if err != nil {
		return nil, err
	}

	avg := constant.DefaultAvgServiceTime
	business, err := qs.businessRepository.GetBusiness(ctx, businessID)
	if err == nil {
		avg = serviceTime(business)
	} else if !errors.Is(err, constant.BusinessNotFoundErr) {
		return nil, err
	}

	waiting := make([]WaitingEntry, 0, len(entries))
	for _, e := range entries {
		waiting = append(waiting, WaitingEntry{
			QueueEntry:    e,
			EstimatedWait: EstimateWait(e.Position, avg),
		})
	}

	return waiting, nil
}

// ActiveEntryByPhone finds a customer's most recent waiting or serving entry,
// used by the USSD position check where only the caller's number is known.
func (qs *queueService) ActiveEntryByPhone(ctx context.Context, phoneNumber string) (EntryStatus, error) {
	entry, err := qs.queueRepository.FindLatestByPhone(ctx, phoneNumber)
	if err != nil {
		return EntryStatus{}, err
	}

	business, err := qs.businessRepository.GetBusiness(ctx, entry.BusinessID)
	if err != nil {
		return EntryStatus{}, err
	}

	return EntryStatus{
		Entry:         entry,
		BusinessName:  business.Name,
		EstimatedWait: qs.estimateFor(entry, business),
	}, nil
}

func (qs *queueService) estimateFor(entry domain.QueueEntry, business domain.Business) int {
	if entry.Status != domain.StatusWaiting {
		return 0
	}
	return EstimateWait(entry.Position, serviceTime(business))
}

func (qs *queueService) event(eventType string, entry domain.QueueEntry) domain.QueueEvent {
	return domain.QueueEvent{
		Type:         eventType,
		QueueID:      entry.ID.String(),
		BusinessID:   entry.BusinessID.String(),
		CustomerName: entry.CustomerName,
		Position:     entry.Position,
		Status:       string(entry.Status),
		CreatedAt:    time.Now(),
	}
}

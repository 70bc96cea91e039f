package queue_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/domain"
	"github.com/Marcelofury/SmartQueue/internal/lock"
	"github.com/Marcelofury/SmartQueue/internal/repository"
	"github.com/Marcelofury/SmartQueue/internal/repository/entity"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	mu        sync.Mutex
	enabled   bool
	sendErr   error
	turnTo    []string
	confirmTo []string
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) SendTurnNotification(_ context.Context, phoneNumber, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turnTo = append(f.turnTo, phoneNumber)
	return f.sendErr
}

func (f *fakeNotifier) SendJoinConfirmation(_ context.Context, phoneNumber, _ string, _, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmTo = append(f.confirmTo, phoneNumber)
	return f.sendErr
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.QueueEvent
}

func (r *recordingPublisher) Publish(_ context.Context, ev domain.QueueEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		types = append(types, ev.Type)
	}
	return types
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Business{}, &entity.QueueEntry{}))
	return db
}

func seedBusiness(t *testing.T, db *gorm.DB, avgServiceTime int) uuid.UUID {
	t.Helper()
	business := entity.Business{
		Id:             uuid.New(),
		Name:           "Test Salon",
		Location:       "Kampala",
		AvgServiceTime: avgServiceTime,
	}
	require.NoError(t, db.Create(&business).Error)
	return business.Id
}

type engineFixture struct {
	svc      lifecycle
	notifier *fakeNotifier
	events   *recordingPublisher
	db       *gorm.DB
}

// lifecycle mirrors the operations under test so the fixture stays typed.
type lifecycle interface {
	Join(ctx context.Context, in queueService.JoinInput) (queueService.JoinResult, error)
	CallNext(ctx context.Context, businessID uuid.UUID) (queueService.CallNextResult, error)
	Complete(ctx context.Context, queueID uuid.UUID) (domain.QueueEntry, error)
	Status(ctx context.Context, queueID uuid.UUID) (queueService.EntryStatus, error)
	ListWaiting(ctx context.Context, businessID uuid.UUID) ([]queueService.WaitingEntry, error)
	ActiveEntryByPhone(ctx context.Context, phoneNumber string) (queueService.EntryStatus, error)
}

func setupEngine(t *testing.T) *engineFixture {
	t.Helper()
	db := setupTestDB(t)
	notifier := &fakeNotifier{enabled: true}
	events := &recordingPublisher{}
	logger := logrus.New()

	svc := queueService.NewQueueService(
		repository.NewBusinessRepository(db),
		repository.NewQueueRepository(db),
		notifier,
		events,
		lock.NewKeyedMutex(),
		logger,
	)

	return &engineFixture{svc: svc, notifier: notifier, events: events, db: db}
}

func join(t *testing.T, f *engineFixture, businessID uuid.UUID, name, phone string) queueService.JoinResult {
	t.Helper()
	result, err := f.svc.Join(context.Background(), queueService.JoinInput{
		BusinessID:   businessID,
		CustomerName: name,
		PhoneNumber:  phone,
	})
	require.NoError(t, err)
	return result
}

func TestJoinEmptyQueue(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	result := join(t, f, businessID, "Alice", "+1555")

	assert.Equal(t, 1, result.Entry.Position)
	assert.Equal(t, 0, result.EstimatedWait)
	assert.Equal(t, domain.StatusWaiting, result.Entry.Status)
	assert.Equal(t, "Test Salon", result.BusinessName)
	assert.Equal(t, []string{domain.EventJoined}, f.events.types())
}

func TestJoinSecondCustomer(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	second := join(t, f, businessID, "Bob", "+1556")

	assert.Equal(t, 2, second.Entry.Position)
	assert.Equal(t, 10, second.EstimatedWait)
}

func TestJoinMissingFields(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	_, err := f.svc.Join(context.Background(), queueService.JoinInput{
		BusinessID:  businessID,
		PhoneNumber: "+1555",
	})
	assert.ErrorIs(t, err, constant.MissingFieldsErr)
}

func TestJoinUnknownBusiness(t *testing.T) {
	f := setupEngine(t)
	seedBusiness(t, f.db, 10)

	_, err := f.svc.Join(context.Background(), queueService.JoinInput{
		BusinessID:   uuid.New(),
		CustomerName: "Alice",
		PhoneNumber:  "+1555",
	})
	assert.ErrorIs(t, err, constant.BusinessNotFoundErr)
}

func TestJoinConfirmationOnlyWhenRequested(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	assert.Empty(t, f.notifier.confirmTo)

	_, err := f.svc.Join(context.Background(), queueService.JoinInput{
		BusinessID:   businessID,
		CustomerName: "Bob",
		PhoneNumber:  "+1556",
		NotifyJoin:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"+1556"}, f.notifier.confirmTo)
}

func TestCallNextPromotesHeadAndRenumbers(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	first := join(t, f, businessID, "Alice", "+1555")
	join(t, f, businessID, "Bob", "+1556")
	join(t, f, businessID, "Carol", "+1557")

	result, err := f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)

	assert.Equal(t, first.Entry.ID, result.Entry.ID)
	assert.Equal(t, domain.StatusServing, result.Entry.Status)
	assert.True(t, result.SmsSent)
	assert.Equal(t, []string{"+1555"}, f.notifier.turnTo)

	waiting, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)
	require.Len(t, waiting, 2)
	assert.Equal(t, "Bob", waiting[0].CustomerName)
	assert.Equal(t, 1, waiting[0].Position)
	assert.Equal(t, "Carol", waiting[1].CustomerName)
	assert.Equal(t, 2, waiting[1].Position)
}

func TestCallNextEveryPositionDropsByOne(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	for i := 0; i < 5; i++ {
		join(t, f, businessID, fmt.Sprintf("Customer %d", i+1), fmt.Sprintf("+15%02d", i))
	}

	before, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)

	_, err = f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)

	after, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)
	require.Len(t, after, len(before)-1)
	for i, entry := range after {
		assert.Equal(t, before[i+1].ID, entry.ID)
		assert.Equal(t, before[i+1].Position-1, entry.Position)
	}
}

func TestCallNextEmptyQueue(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	_, err := f.svc.CallNext(context.Background(), businessID)
	assert.ErrorIs(t, err, constant.EmptyQueueErr)
	assert.Empty(t, f.events.types())
}

func TestCallNextNotificationFailureDoesNotFailCall(t *testing.T) {
	f := setupEngine(t)
	f.notifier.sendErr = fmt.Errorf("gateway unreachable")
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")

	result, err := f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusServing, result.Entry.Status)
	assert.True(t, result.SmsSent)
}

func TestCompleteServingEntry(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	called, err := f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)

	done, err := f.svc.Complete(context.Background(), called.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, done.Status)
}

func TestCompleteWaitingEntryReconciles(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	middle := join(t, f, businessID, "Bob", "+1556")
	join(t, f, businessID, "Carol", "+1557")

	_, err := f.svc.Complete(context.Background(), middle.Entry.ID)
	require.NoError(t, err)

	waiting, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)
	require.Len(t, waiting, 2)
	assert.Equal(t, "Alice", waiting[0].CustomerName)
	assert.Equal(t, 1, waiting[0].Position)
	assert.Equal(t, "Carol", waiting[1].CustomerName)
	assert.Equal(t, 2, waiting[1].Position)
}

func TestCompleteIsIdempotent(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	entry := join(t, f, businessID, "Alice", "+1555")

	first, err := f.svc.Complete(context.Background(), entry.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, first.Status)

	second, err := f.svc.Complete(context.Background(), entry.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, second.Status)
}

func TestCompleteUnknownEntry(t *testing.T) {
	f := setupEngine(t)
	seedBusiness(t, f.db, 10)

	_, err := f.svc.Complete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, constant.EntryNotFoundErr)
}

func TestStatusWaitingUsesLivePosition(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	second := join(t, f, businessID, "Bob", "+1556")

	status, err := f.svc.Status(context.Background(), second.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, status.EstimatedWait)

	// the head departs; Bob's live estimate drops to zero
	_, err = f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)

	status, err = f.svc.Status(context.Background(), second.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Entry.Position)
	assert.Equal(t, 0, status.EstimatedWait)
}

func TestStatusServingHasZeroWait(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")
	called, err := f.svc.CallNext(context.Background(), businessID)
	require.NoError(t, err)

	status, err := f.svc.Status(context.Background(), called.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusServing, status.Entry.Status)
	assert.Equal(t, 0, status.EstimatedWait)
}

func TestStatusUnknownEntry(t *testing.T) {
	f := setupEngine(t)
	seedBusiness(t, f.db, 10)

	_, err := f.svc.Status(context.Background(), uuid.New())
	assert.ErrorIs(t, err, constant.EntryNotFoundErr)
}

func TestListWaitingDefaultsServiceTime(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 0)

	join(t, f, businessID, "Alice", "+1555")
	join(t, f, businessID, "Bob", "+1556")

	waiting, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)
	require.Len(t, waiting, 2)
	assert.Equal(t, 0, waiting[0].EstimatedWait)
	assert.Equal(t, constant.DefaultAvgServiceTime, waiting[1].EstimatedWait)
}

func TestActiveEntryByPhone(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	join(t, f, businessID, "Alice", "+1555")

	status, err := f.svc.ActiveEntryByPhone(context.Background(), "+1555")
	require.NoError(t, err)
	assert.Equal(t, "Alice", status.Entry.CustomerName)
	assert.Equal(t, "Test Salon", status.BusinessName)

	_, err = f.svc.ActiveEntryByPhone(context.Background(), "+1999")
	assert.ErrorIs(t, err, constant.EntryNotFoundErr)
}

func TestConcurrentJoinsGetDistinctPositions(t *testing.T) {
	f := setupEngine(t)
	businessID := seedBusiness(t, f.db, 10)

	const customers = 8
	var wg sync.WaitGroup
	for i := 0; i < customers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := f.svc.Join(context.Background(), queueService.JoinInput{
				BusinessID:   businessID,
				CustomerName: fmt.Sprintf("Customer %d", n),
				PhoneNumber:  fmt.Sprintf("+15%03d", n),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	waiting, err := f.svc.ListWaiting(context.Background(), businessID)
	require.NoError(t, err)
	require.Len(t, waiting, customers)

	seen := make(map[int]bool, customers)
	for _, entry := range waiting {
		seen[entry.Position] = true
	}
	for p := 1; p <= customers; p++ {
		assert.True(t, seen[p], "missing position %d", p)
	}
}

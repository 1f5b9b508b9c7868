package payment_sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

type fakeBookingRepo struct {
	pending        []*domain.Booking
	paidUnsent     []*domain.Booking
	statusUpdates  map[int64]domain.BookingStatus
	reminderStamps map[int64]time.Time
	confirmations  []int64
	stampErr       error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		statusUpdates:  make(map[int64]domain.BookingStatus),
		reminderStamps: make(map[int64]time.Time),
	}
}

func (r *fakeBookingRepo) GetPendingPayment(_ context.Context) ([]*domain.Booking, error) {
	return r.pending, nil
}

func (r *fakeBookingRepo) GetPaidUnconfirmed(_ context.Context) ([]*domain.Booking, error) {
	return r.paidUnsent, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.statusUpdates[id] = status
	return nil
}

func (r *fakeBookingRepo) SetLastReminder(_ context.Context, id int64, at time.Time) error {
	if r.stampErr != nil {
		return r.stampErr
	}
	r.reminderStamps[id] = at
	return nil
}

func (r *fakeBookingRepo) SetConfirmationSent(_ context.Context, id int64) error {
	r.confirmations = append(r.confirmations, id)
	return nil
}

type fakeProfileRepo struct{}

func (fakeProfileRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	return &domain.Profile{ID: id, PhoneNumber: "+79990000001", Name: "Anna"}, nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, _ string, text string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, text)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var sweepNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func pendingBooking(id int64, createdDaysAgo int) *domain.Booking {
	start, _ := types.NewTimeStringFromString("11:00")
	end, _ := types.NewTimeStringFromString("12:00")
	return &domain.Booking{
		ID:            id,
		ProfileID:     1,
		BookingDate:   time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       end,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
		ChargeAmount:  1500,
		CreatedAt:     sweepNow.AddDate(0, 0, -createdDaysAgo),
	}
}

func newSweep(repo *fakeBookingRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, fakeProfileRepo{}, notifier, nopLogger{})
	uc.timeProvider = fixedTime{t: sweepNow}
	return uc
}

func TestReminderSweep_GraceDayNoAction(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 0)}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Reminded)
	assert.Equal(t, 0, report.Cancelled)
	assert.Empty(t, notifier.sent)
	assert.Empty(t, repo.reminderStamps)
}

func TestReminderSweep_ReminderDays(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 1), pendingBooking(2, 2)}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Reminded)
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[0], "Day 1 of 3")
	assert.Contains(t, notifier.sent[1], "Day 2 of 3")
	assert.Contains(t, repo.reminderStamps, int64(1))
	assert.Contains(t, repo.reminderStamps, int64(2))
}

func TestReminderSweep_SameDayThrottle(t *testing.T) {
	repo := newFakeBookingRepo()
	reminded := pendingBooking(1, 1)
	stamp := sweepNow.Add(-2 * time.Hour)
	reminded.LastReminderAt = &stamp
	repo.pending = []*domain.Booking{reminded}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Reminded)
	assert.Empty(t, notifier.sent)
}

func TestReminderSweep_NextDayRemindsAgain(t *testing.T) {
	repo := newFakeBookingRepo()
	reminded := pendingBooking(1, 2)
	stamp := sweepNow.AddDate(0, 0, -1)
	reminded.LastReminderAt = &stamp
	repo.pending = []*domain.Booking{reminded}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Reminded)
}

func TestReminderSweep_CancelAfterGracePeriod(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 3), pendingBooking(2, 10)}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Cancelled)
	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[1])
	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[2])
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[0], "has been cancelled")
}

func TestReminderSweep_NotificationFailureDoesNotRollBack(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 1)}
	notifier := &fakeNotifier{err: errors.New("gateway down")}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	// Штамп записан до отправки, ошибка отправки проглочена
	assert.Equal(t, 1, report.Reminded)
	assert.Equal(t, 0, report.Failures)
	assert.Contains(t, repo.reminderStamps, int64(1))
}

func TestReminderSweep_StampFailureCountsAsFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 1)}
	repo.stampErr = errors.New("db down")
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunReminderSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failures)
	assert.Empty(t, notifier.sent)
}

func TestConfirmationSweep(t *testing.T) {
	repo := newFakeBookingRepo()
	paid := pendingBooking(5, 1)
	paid.PaymentStatus = domain.PaymentPaid
	repo.paidUnsent = []*domain.Booking{paid}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).RunConfirmationSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Confirmed)
	assert.Equal(t, []int64{5}, repo.confirmations)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "Payment received")
}

func TestExecute_CombinesBothSweeps(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending = []*domain.Booking{pendingBooking(1, 1)}
	paid := pendingBooking(2, 1)
	paid.PaymentStatus = domain.PaymentPaid
	repo.paidUnsent = []*domain.Booking{paid}
	notifier := &fakeNotifier{}

	report, err := newSweep(repo, notifier).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Reminded)
	assert.Equal(t, 1, report.Confirmed)
}

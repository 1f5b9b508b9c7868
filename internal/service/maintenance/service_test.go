package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	maintenanceRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/maintenance"
)

type fakeMaintenanceRepo struct {
	payment *domain.MaintenancePayment

	paidID   int64
	paidDate time.Time
	unpaidID int64
}

func (r *fakeMaintenanceRepo) GetByID(_ context.Context, id int64) (*domain.MaintenancePayment, error) {
	if r.payment == nil || r.payment.ID != id {
		return nil, maintenanceRepo.ErrPaymentNotFound
	}
	return r.payment, nil
}

func (r *fakeMaintenanceRepo) MarkPaid(_ context.Context, id int64, paidDate time.Time) error {
	r.paidID = id
	r.paidDate = paidDate
	return nil
}

func (r *fakeMaintenanceRepo) MarkUnpaid(_ context.Context, id int64) error {
	r.unpaidID = id
	return nil
}

type fakeProfileRepo struct{}

func (fakeProfileRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	return &domain.Profile{ID: id, PhoneNumber: "+79990000001", Name: "Anna"}, nil
}

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Send(_ context.Context, _ string, text string) error {
	n.sent = append(n.sent, text)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func unpaidPayment() *domain.MaintenancePayment {
	return &domain.MaintenancePayment{
		ID:        10,
		ProfileID: 1,
		Year:      2024,
		Month:     3,
		Amount:    800,
		Status:    domain.MaintenanceUnpaid,
	}
}

func TestMarkPaid(t *testing.T) {
	repo := &fakeMaintenanceRepo{payment: unpaidPayment()}
	notifier := &fakeNotifier{}
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	svc := NewService(repo, fakeProfileRepo{}, notifier, nopLogger{})
	svc.timeProvider = fixedTime{t: now}

	require.NoError(t, svc.MarkPaid(context.Background(), 10))

	assert.Equal(t, int64(10), repo.paidID)
	assert.Equal(t, now, repo.paidDate)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "March 2024")
	assert.Contains(t, notifier.sent[0], "800.00")
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	paid := unpaidPayment()
	paid.Status = domain.MaintenancePaid
	repo := &fakeMaintenanceRepo{payment: paid}
	notifier := &fakeNotifier{}

	svc := NewService(repo, fakeProfileRepo{}, notifier, nopLogger{})

	err := svc.MarkPaid(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Empty(t, notifier.sent)
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc := NewService(&fakeMaintenanceRepo{}, fakeProfileRepo{}, &fakeNotifier{}, nopLogger{})

	err := svc.MarkPaid(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMarkUnpaid(t *testing.T) {
	paid := unpaidPayment()
	paid.Status = domain.MaintenancePaid
	repo := &fakeMaintenanceRepo{payment: paid}
	notifier := &fakeNotifier{}

	svc := NewService(repo, fakeProfileRepo{}, notifier, nopLogger{})

	require.NoError(t, svc.MarkUnpaid(context.Background(), 10))

	assert.Equal(t, int64(10), repo.unpaidID)
	// Снятие отметки не уведомляет жителя
	assert.Empty(t, notifier.sent)
}

func TestMarkUnpaid_NotPaid(t *testing.T) {
	repo := &fakeMaintenanceRepo{payment: unpaidPayment()}

	svc := NewService(repo, fakeProfileRepo{}, &fakeNotifier{}, nopLogger{})

	err := svc.MarkUnpaid(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAlreadyUnpaid)
}

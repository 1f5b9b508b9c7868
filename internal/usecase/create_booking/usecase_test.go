package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

type fakeBookingRepo struct {
	existing  bool
	existsErr error
	createErr error

	created *domain.Booking
}

func (r *fakeBookingRepo) ExistsConfirmedSlot(_ context.Context, _ time.Time, _, _ types.TimeString) (bool, error) {
	return r.existing, r.existsErr
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *b
	created.ID = 42
	created.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r.created = &created
	return &created, nil
}

// inlineTxManager выполняет колбек без транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	start, _ := types.NewTimeStringFromString("11:00")
	end, _ := types.NewTimeStringFromString("12:00")
	return &Request{
		ProfileID: 7,
		Date:      time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &inlineTxManager{}
	uc := NewUseCase(repo, tx, 1500, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.ProfileID)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.PaymentPending, resp.PaymentStatus)
	assert.Equal(t, 1500.0, resp.ChargeAmount)
	assert.Equal(t, 1, tx.calls)

	require.NotNil(t, repo.created)
	assert.Equal(t, "11:00", repo.created.StartTime.String())
	assert.Equal(t, "12:00", repo.created.EndTime.String())
}

func TestExecute_FastPathConflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: true}
	uc := NewUseCase(repo, &inlineTxManager{}, 1500, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_ConstraintConflictTranslated(t *testing.T) {
	// Проверка прошла, но вставка уперлась в уникальный констрейнт
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := NewUseCase(repo, &inlineTxManager{}, 1500, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &inlineTxManager{}, 1500, nopLogger{})

	req := validRequest()
	req.ProfileID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Date = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoErrorWrapped(t *testing.T) {
	repo := &fakeBookingRepo{existsErr: errors.New("db down")}
	uc := NewUseCase(repo, &inlineTxManager{}, 1500, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

package payment_sweep

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetPendingPayment(ctx context.Context) ([]*domain.Booking, error)
	GetPaidUnconfirmed(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetLastReminder(ctx context.Context, id int64, at time.Time) error
	SetConfirmationSent(ctx context.Context, id int64) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

// Notifier интерфейс шлюза исходящих сообщений
type Notifier interface {
	Send(ctx context.Context, phoneNumber, text string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package maintenance_sweep

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// MaintenanceRepository интерфейс репозитория строк взносов
type MaintenanceRepository interface {
	Create(ctx context.Context, payment *domain.MaintenancePayment) (*domain.MaintenancePayment, error)
	GetByProfile(ctx context.Context, profileID int64) ([]*domain.MaintenancePayment, error)
	GetUnpaid(ctx context.Context) ([]*domain.MaintenancePayment, error)
	StampReminder(ctx context.Context, profileID int64, at time.Time) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetAll(ctx context.Context) ([]*domain.Profile, error)
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

package handle_message

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория конфигурации рабочих часов
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// SessionStore хранилище диалоговых сессий по номеру телефона
type SessionStore interface {
	Get(ctx context.Context, phoneNumber string) (*domain.ConversationState, error)
	Put(ctx context.Context, phoneNumber string, state *domain.ConversationState) error
	Delete(ctx context.Context, phoneNumber string) error
}

// BookingCreator интерфейс use case создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
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

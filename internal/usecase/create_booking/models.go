package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProfileID int64            // ID профиля жителя
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало слота
	EndTime   types.TimeString // Конец слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ProfileID     int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	ChargeAmount  float64
	CreatedAt     time.Time
}

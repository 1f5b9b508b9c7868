package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования зала.
// Последовательность check-then-insert выполняется в сериализуемой
// транзакции; авторитетная защита от двойного бронирования - уникальный
// констрейнт БД, проверка перед вставкой - лишь быстрый путь.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	hallCharge  float64
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	hallCharge float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		hallCharge:  hallCharge,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Из двух конкурентных запросов на один слот ровно один завершается
// успехом, второй получает ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: profile=%d, date=%s, slot=%s-%s",
		req.ProfileID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Проверка перед вставкой - оптимизация: даёт быстрый отказ
		// без нарушения констрейнта
		taken, err := uc.bookingRepo.ExistsConfirmedSlot(txCtx, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			ProfileID:     req.ProfileID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentPending,
			ChargeAmount:  uc.hallCharge,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken: date=%s, slot=%s-%s",
				req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		ProfileID:     result.ProfileID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
		ChargeAmount:  result.ChargeAmount,
		CreatedAt:     result.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ProfileID <= 0 {
		return fmt.Errorf("%w: profileID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}

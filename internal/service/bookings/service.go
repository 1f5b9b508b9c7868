package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HallBookingService/internal/service/bookings/models"
)

// Service административные операции над бронированиями зала
type Service struct {
	bookingRepo BookingRepository
	profileRepo ProfileRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	profileRepo ProfileRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// List получает бронирования с фильтрацией по дате и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование от имени администратора.
// Житель получает уведомление об отмене; ошибка отправки не откатывает отмену.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !booking.IsConfirmed() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
		return ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifyCancellation(ctx, booking)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// MarkPaid помечает бронирование оплаченным.
// Подтверждение оплаты жителю отправит проход по платежам.
func (s *Service) MarkPaid(ctx context.Context, bookingID int64) error {
	s.logger.Info("MarkPaid: marking booking id=%d as paid", bookingID)

	booking, err := s.getBooking(ctx, "MarkPaid", bookingID)
	if err != nil {
		return err
	}

	if !booking.IsConfirmed() {
		s.logger.Warn("MarkPaid: booking id=%d is cancelled", bookingID)
		return ErrCannotPay
	}
	if !booking.IsPaymentPending() {
		s.logger.Warn("MarkPaid: booking id=%d is already paid", bookingID)
		return ErrAlreadyPaid
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, domain.PaymentPaid); err != nil {
		s.logger.Error("MarkPaid: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkPaid: successfully marked booking id=%d as paid", bookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// notifyCancellation отправляет жителю уведомление об отмене брони;
// ошибка логируется и проглатывается
func (s *Service) notifyCancellation(ctx context.Context, booking *domain.Booking) {
	profile, err := s.profileRepo.GetByID(ctx, booking.ProfileID)
	if err != nil {
		s.logger.Error("Cancel: failed to load profile id=%d: %v", booking.ProfileID, err)
		return
	}

	text := fmt.Sprintf(
		"Your hall booking for %s, %s-%s has been cancelled by the administration. Please contact the office for details.",
		booking.BookingDate.Format(domain.DateFormat), booking.StartTime, booking.EndTime,
	)
	if err := s.notifier.Send(ctx, profile.PhoneNumber, text); err != nil {
		s.logger.Error("Cancel: notification to %s failed: %v", profile.PhoneNumber, err)
	}
}

package payment_sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// UseCase плановые проходы по жизненному циклу оплаты бронирований.
// Оба прохода идемпотентны и безопасны при повторном запуске и прерывании
// посреди пачки: изменение состояния фиксируется ДО отправки уведомления,
// ошибка отправки логируется и не откатывает изменение (at-least-once).
type UseCase struct {
	bookingRepo  BookingRepository
	profileRepo  ProfileRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	profileRepo ProfileRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет оба прохода: напоминания/отмены, затем подтверждения
func (uc *UseCase) Execute(ctx context.Context) (*Report, error) {
	report, err := uc.RunReminderSweep(ctx)
	if err != nil {
		return nil, err
	}

	confirmations, err := uc.RunConfirmationSweep(ctx)
	if err != nil {
		return nil, err
	}

	report.Scanned += confirmations.Scanned
	report.Confirmed = confirmations.Confirmed
	report.Failures += confirmations.Failures

	return report, nil
}

// RunReminderSweep проход по подтвержденным неоплаченным бронированиям:
//   - день 0: льготное окно, без действий;
//   - дни 1-2: одно напоминание в календарный день ("Day X of 3");
//   - день 3 и далее: отмена с уведомлением, напоминаний больше нет.
func (uc *UseCase) RunReminderSweep(ctx context.Context) (*Report, error) {
	now := uc.timeProvider.Now()

	bookings, err := uc.bookingRepo.GetPendingPayment(ctx)
	if err != nil {
		uc.logger.Error("PaymentSweep: failed to list pending bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list pending bookings: %v", ErrInternal, err)
	}

	report := &Report{Scanned: len(bookings)}

	for _, booking := range bookings {
		days := booking.DaysSinceCreation(now)

		switch {
		case days <= 0:
			// Льготное окно до первого напоминания

		case days < domain.BookingGracePeriodDays:
			if booking.ReminderSentOn(now) {
				continue
			}
			if err := uc.remind(ctx, booking, days, now); err != nil {
				uc.logger.Error("PaymentSweep: reminder failed for booking id=%d: %v", booking.ID, err)
				report.Failures++
				continue
			}
			report.Reminded++

		default:
			if err := uc.cancel(ctx, booking); err != nil {
				uc.logger.Error("PaymentSweep: cancellation failed for booking id=%d: %v", booking.ID, err)
				report.Failures++
				continue
			}
			report.Cancelled++
		}
	}

	uc.logger.Info("PaymentSweep: reminder sweep done: scanned=%d, reminded=%d, cancelled=%d, failures=%d",
		report.Scanned, report.Reminded, report.Cancelled, report.Failures)

	return report, nil
}

// RunConfirmationSweep проход по оплаченным бронированиям без отправленного
// подтверждения: флаг выставляется до отправки, повторно не шлется
func (uc *UseCase) RunConfirmationSweep(ctx context.Context) (*Report, error) {
	bookings, err := uc.bookingRepo.GetPaidUnconfirmed(ctx)
	if err != nil {
		uc.logger.Error("PaymentSweep: failed to list paid bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list paid bookings: %v", ErrInternal, err)
	}

	report := &Report{Scanned: len(bookings)}

	for _, booking := range bookings {
		if err := uc.bookingRepo.SetConfirmationSent(ctx, booking.ID); err != nil {
			uc.logger.Error("PaymentSweep: failed to mark confirmation for booking id=%d: %v", booking.ID, err)
			report.Failures++
			continue
		}

		uc.notify(ctx, booking.ProfileID, confirmationText(booking))
		report.Confirmed++
	}

	uc.logger.Info("PaymentSweep: confirmation sweep done: scanned=%d, confirmed=%d, failures=%d",
		report.Scanned, report.Confirmed, report.Failures)

	return report, nil
}

func (uc *UseCase) remind(ctx context.Context, booking *domain.Booking, dayNumber int, now time.Time) error {
	if err := uc.bookingRepo.SetLastReminder(ctx, booking.ID, now); err != nil {
		return err
	}
	uc.notify(ctx, booking.ProfileID, reminderText(booking, dayNumber))
	return nil
}

func (uc *UseCase) cancel(ctx context.Context, booking *domain.Booking) error {
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
		return err
	}
	uc.notify(ctx, booking.ProfileID, cancellationText(booking))
	return nil
}

// notify отправляет сообщение жителю; любая ошибка логируется и
// проглатывается - состояние уже зафиксировано
func (uc *UseCase) notify(ctx context.Context, profileID int64, text string) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		uc.logger.Error("PaymentSweep: failed to load profile id=%d for notification: %v", profileID, err)
		return
	}

	if err := uc.notifier.Send(ctx, profile.PhoneNumber, text); err != nil {
		uc.logger.Error("PaymentSweep: notification to %s failed: %v", profile.PhoneNumber, err)
	}
}

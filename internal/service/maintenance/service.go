package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	maintenanceRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/maintenance"
)

// Service административные операции над ежемесячными взносами
type Service struct {
	maintenanceRepo MaintenanceRepository
	profileRepo     ProfileRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса взносов
func NewService(
	maintenanceRepo MaintenanceRepository,
	profileRepo ProfileRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		maintenanceRepo: maintenanceRepo,
		profileRepo:     profileRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// MarkPaid помечает строку взноса оплаченной сегодняшним числом и шлет
// жителю подтверждение. Ошибка отправки не откатывает отметку.
func (s *Service) MarkPaid(ctx context.Context, paymentID int64) error {
	s.logger.Info("MarkPaid: marking payment id=%d as paid", paymentID)

	payment, err := s.getPayment(ctx, "MarkPaid", paymentID)
	if err != nil {
		return err
	}

	if !payment.IsUnpaid() {
		s.logger.Warn("MarkPaid: payment id=%d is already paid", paymentID)
		return ErrAlreadyPaid
	}

	if err := s.maintenanceRepo.MarkPaid(ctx, paymentID, s.timeProvider.Now()); err != nil {
		s.logger.Error("MarkPaid: repository error for payment id=%d: %v", paymentID, err)
		return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	s.notifyPaid(ctx, payment)

	s.logger.Info("MarkPaid: successfully marked payment id=%d as paid", paymentID)
	return nil
}

// MarkUnpaid снимает отметку об оплате: статус, дата оплаты и флаг
// подтверждения сбрасываются. Уведомление жителю не отправляется.
func (s *Service) MarkUnpaid(ctx context.Context, paymentID int64) error {
	s.logger.Info("MarkUnpaid: reverting payment id=%d to unpaid", paymentID)

	payment, err := s.getPayment(ctx, "MarkUnpaid", paymentID)
	if err != nil {
		return err
	}

	if payment.IsUnpaid() {
		s.logger.Warn("MarkUnpaid: payment id=%d is not paid", paymentID)
		return ErrAlreadyUnpaid
	}

	if err := s.maintenanceRepo.MarkUnpaid(ctx, paymentID); err != nil {
		s.logger.Error("MarkUnpaid: repository error for payment id=%d: %v", paymentID, err)
		return fmt.Errorf("%w: MarkUnpaid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkUnpaid: successfully reverted payment id=%d", paymentID)
	return nil
}

func (s *Service) getPayment(ctx context.Context, op string, paymentID int64) (*domain.MaintenancePayment, error) {
	payment, err := s.maintenanceRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, maintenanceRepo.ErrPaymentNotFound) {
			s.logger.Warn("%s: payment id=%d not found", op, paymentID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("%s: repository error for payment id=%d: %v", op, paymentID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return payment, nil
}

// notifyPaid отправляет жителю подтверждение оплаты взноса;
// ошибка логируется и проглатывается
func (s *Service) notifyPaid(ctx context.Context, payment *domain.MaintenancePayment) {
	profile, err := s.profileRepo.GetByID(ctx, payment.ProfileID)
	if err != nil {
		s.logger.Error("MarkPaid: failed to load profile id=%d: %v", payment.ProfileID, err)
		return
	}

	text := fmt.Sprintf(
		"We received your maintenance payment of %.2f for %s. Thank you!",
		payment.Amount, payment.MonthLabel(),
	)
	if err := s.notifier.Send(ctx, profile.PhoneNumber, text); err != nil {
		s.logger.Error("MarkPaid: notification to %s failed: %v", profile.PhoneNumber, err)
	}
}

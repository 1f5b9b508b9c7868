package maintenance_sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	maintenanceRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/maintenance"
)

// UseCase плановые проходы по ежемесячным взносам.
// Создание строки взноса - само по себе маркер дедупликации: повторный
// запуск любого прохода не создает дублей и не шлет повторных уведомлений
// в тот же календарный день. Изменение состояния фиксируется до отправки
// уведомления (at-least-once).
type UseCase struct {
	maintenanceRepo MaintenanceRepository
	profileRepo     ProfileRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	maintenanceRepo MaintenanceRepository,
	profileRepo ProfileRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		maintenanceRepo: maintenanceRepo,
		profileRepo:     profileRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет оба прохода: создание строк за новый месяц,
// затем напоминания о неоплаченных взносах
func (uc *UseCase) Execute(ctx context.Context) (*Report, error) {
	report, err := uc.RunMonthlySweep(ctx)
	if err != nil {
		return nil, err
	}

	reminders, err := uc.RunReminderSweep(ctx)
	if err != nil {
		return nil, err
	}

	report.RemindersSent = reminders.RemindersSent
	report.ReminderSkipped = reminders.ReminderSkipped
	report.Failures += reminders.Failures

	return report, nil
}

// RunMonthlySweep для каждого профиля досоздает строки взносов от месяца
// регистрации до текущего месяца включительно и шлет уведомление о
// готовности счета за текущий месяц, если строка создана этим запуском
func (uc *UseCase) RunMonthlySweep(ctx context.Context) (*Report, error) {
	now := uc.timeProvider.Now()

	profiles, err := uc.profileRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("MaintenanceSweep: failed to list profiles: %v", err)
		return nil, fmt.Errorf("%w: failed to list profiles: %v", ErrInternal, err)
	}

	report := &Report{ProfilesScanned: len(profiles)}

	for _, profile := range profiles {
		created, err := uc.EnsureMonthsFromJoin(ctx, profile, now)
		if err != nil {
			uc.logger.Error("MaintenanceSweep: ensure months failed for profile id=%d: %v", profile.ID, err)
			report.Failures++
			continue
		}
		report.RowsCreated += len(created)

		for _, payment := range created {
			if payment.Year == now.Year() && payment.Month == int(now.Month()) {
				uc.notify(ctx, profile, invoiceText(payment))
				report.InvoicesSent++
			}
		}
	}

	uc.logger.Info("MaintenanceSweep: monthly sweep done: profiles=%d, rows_created=%d, invoices=%d, failures=%d",
		report.ProfilesScanned, report.RowsCreated, report.InvoicesSent, report.Failures)

	return report, nil
}

// EnsureMonthsFromJoin создает недостающие строки взносов для каждого
// календарного месяца от месяца создания профиля до текущего включительно.
// Сумма - снимок текущего размера взноса профиля на момент создания строки.
// Повторный вызов для уже покрытых месяцев - no-op.
func (uc *UseCase) EnsureMonthsFromJoin(ctx context.Context, profile *domain.Profile, now time.Time) ([]*domain.MaintenancePayment, error) {
	existing, err := uc.maintenanceRepo.GetByProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	covered := make(map[[2]int]bool, len(existing))
	for _, payment := range existing {
		covered[[2]int{payment.Year, payment.Month}] = true
	}

	created := make([]*domain.MaintenancePayment, 0)

	joinYear, joinMonth := profile.JoinYearMonth()
	cursor := time.Date(joinYear, joinMonth, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(end) {
		key := [2]int{cursor.Year(), int(cursor.Month())}
		if !covered[key] {
			payment, err := uc.maintenanceRepo.Create(ctx, &domain.MaintenancePayment{
				ProfileID: profile.ID,
				Year:      cursor.Year(),
				Month:     int(cursor.Month()),
				Amount:    profile.MonthlyCharge,
				Status:    domain.MaintenanceUnpaid,
			})
			if err != nil && !errors.Is(err, maintenanceRepo.ErrMonthExists) {
				return created, fmt.Errorf("%w: failed to create payment row: %v", ErrInternal, err)
			}
			if err == nil {
				created = append(created, payment)
			}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return created, nil
}

// RunReminderSweep шлет каждому жителю с неоплаченными взносами одно
// консолидированное напоминание (все месяцы, общая сумма), не чаще
// одного раза в календарный день. До порогового дня месяца проход
// пропускается.
func (uc *UseCase) RunReminderSweep(ctx context.Context) (*Report, error) {
	now := uc.timeProvider.Now()

	if now.Day() < domain.MaintenanceReminderStartDay {
		uc.logger.Info("MaintenanceSweep: reminder sweep skipped: day %d < %d",
			now.Day(), domain.MaintenanceReminderStartDay)
		return &Report{ReminderSkipped: true}, nil
	}

	unpaid, err := uc.maintenanceRepo.GetUnpaid(ctx)
	if err != nil {
		uc.logger.Error("MaintenanceSweep: failed to list unpaid payments: %v", err)
		return nil, fmt.Errorf("%w: failed to list unpaid payments: %v", ErrInternal, err)
	}

	byProfile := make(map[int64][]*domain.MaintenancePayment)
	order := make([]int64, 0)
	for _, payment := range unpaid {
		if _, seen := byProfile[payment.ProfileID]; !seen {
			order = append(order, payment.ProfileID)
		}
		byProfile[payment.ProfileID] = append(byProfile[payment.ProfileID], payment)
	}

	report := &Report{ProfilesScanned: len(order)}

	for _, profileID := range order {
		payments := byProfile[profileID]

		if remindedToday(payments, now) {
			continue
		}

		// Штамп до отправки: прерывание после штампа означает пропуск
		// напоминания до следующего дня, но не дубль
		if err := uc.maintenanceRepo.StampReminder(ctx, profileID, now); err != nil {
			uc.logger.Error("MaintenanceSweep: failed to stamp reminder for profile id=%d: %v", profileID, err)
			report.Failures++
			continue
		}

		profile, err := uc.profileRepo.GetByID(ctx, profileID)
		if err != nil {
			uc.logger.Error("MaintenanceSweep: failed to load profile id=%d: %v", profileID, err)
			report.Failures++
			continue
		}

		uc.notify(ctx, profile, consolidatedReminderText(payments))
		report.RemindersSent++
	}

	uc.logger.Info("MaintenanceSweep: reminder sweep done: profiles=%d, reminders=%d, failures=%d",
		report.ProfilesScanned, report.RemindersSent, report.Failures)

	return report, nil
}

// remindedToday сообщает, отправлялось ли жителю напоминание в этот
// календарный день (достаточно любой из его неоплаченных строк)
func remindedToday(payments []*domain.MaintenancePayment, now time.Time) bool {
	for _, payment := range payments {
		if payment.ReminderSentOn(now) {
			return true
		}
	}
	return false
}

// notify отправляет сообщение жителю; ошибка логируется и проглатывается
func (uc *UseCase) notify(ctx context.Context, profile *domain.Profile, text string) {
	if err := uc.notifier.Send(ctx, profile.PhoneNumber, text); err != nil {
		uc.logger.Error("MaintenanceSweep: notification to %s failed: %v", profile.PhoneNumber, err)
	}
}

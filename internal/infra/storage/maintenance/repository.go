package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var paymentColumns = []string{
	"id",
	"profile_id",
	"year",
	"month",
	"amount",
	"status",
	"paid_date",
	"confirmation_sent",
	"last_reminder_at",
	"created_at",
}

// Repository репозиторий для работы со строками ежемесячных взносов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория взносов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает строку взноса за месяц.
// Уникальность (profile_id, year, month) обеспечивает констрейнт в БД;
// нарушение транслируется в ErrMonthExists - создание строки само по себе
// служит маркером дедупликации для sweep'ов.
func (r *Repository) Create(ctx context.Context, payment *domain.MaintenancePayment) (*domain.MaintenancePayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("maintenance_payments").
		Columns(
			"profile_id",
			"year",
			"month",
			"amount",
			"status",
			"confirmation_sent",
		).
		Values(
			payment.ProfileID,
			payment.Year,
			payment.Month,
			payment.Amount,
			payment.Status,
			payment.ConfirmationSent,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrMonthExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetByID получает строку взноса по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MaintenancePayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("maintenance_payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments, err := r.scanPayments(rows)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, ErrPaymentNotFound
	}

	return payments[0], nil
}

// GetByProfile получает все строки взносов жителя,
// отсортированные по (год, месяц)
func (r *Repository) GetByProfile(ctx context.Context, profileID int64) ([]*domain.MaintenancePayment, error) {
	return r.getList(ctx, "GetByProfile", squirrel.Eq{"profile_id": profileID})
}

// GetUnpaid получает все неоплаченные строки взносов по всем жителям,
// отсортированные по профилю и месяцу (вход reminder sweep)
func (r *Repository) GetUnpaid(ctx context.Context) ([]*domain.MaintenancePayment, error) {
	return r.getList(ctx, "GetUnpaid", squirrel.Eq{"status": domain.MaintenanceUnpaid})
}

func (r *Repository) getList(ctx context.Context, op string, where squirrel.Eq) ([]*domain.MaintenancePayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("maintenance_payments").
		Where(where).
		OrderBy("profile_id ASC, year ASC, month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanPayments(rows)
}

// MarkPaid помечает строку оплаченной: статус, дата оплаты и флаг
// подтверждения выставляются одним запросом
func (r *Repository) MarkPaid(ctx context.Context, id int64, paidDate time.Time) error {
	return r.update(ctx, "MarkPaid", squirrel.Eq{"id": id}, map[string]interface{}{
		"status":            domain.MaintenancePaid,
		"paid_date":         paidDate,
		"confirmation_sent": true,
	}, true)
}

// MarkUnpaid возвращает строку в неоплаченное состояние,
// сбрасывая дату оплаты и флаг подтверждения
func (r *Repository) MarkUnpaid(ctx context.Context, id int64) error {
	return r.update(ctx, "MarkUnpaid", squirrel.Eq{"id": id}, map[string]interface{}{
		"status":            domain.MaintenanceUnpaid,
		"paid_date":         nil,
		"confirmation_sent": false,
	}, true)
}

// StampReminder проставляет время последнего напоминания на все
// неоплаченные строки жителя (троттлинг раз в календарный день)
func (r *Repository) StampReminder(ctx context.Context, profileID int64, at time.Time) error {
	where := squirrel.Eq{
		"profile_id": profileID,
		"status":     domain.MaintenanceUnpaid,
	}
	return r.update(ctx, "StampReminder", where, map[string]interface{}{
		"last_reminder_at": at,
	}, false)
}

func (r *Repository) update(ctx context.Context, op string, where squirrel.Eq, set map[string]interface{}, requireRow bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("maintenance_payments").Where(where)
	for column, value := range set {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if requireRow && rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// scanPayments сканирует результаты запроса в слайс строк взносов
func (r *Repository) scanPayments(rows *sql.Rows) ([]*domain.MaintenancePayment, error) {
	payments := make([]*domain.MaintenancePayment, 0)

	for rows.Next() {
		var payment domain.MaintenancePayment
		var createdAt sql.NullTime
		var paidDate sql.NullTime
		var lastReminderAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.ProfileID,
			&payment.Year,
			&payment.Month,
			&payment.Amount,
			&payment.Status,
			&paidDate,
			&payment.ConfirmationSent,
			&lastReminderAt,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPayments - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time
		if paidDate.Valid {
			payment.PaidDate = &paidDate.Time
		}
		if lastReminderAt.Valid {
			payment.LastReminderAt = &lastReminderAt.Time
		}

		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

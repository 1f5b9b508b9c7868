package booking

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
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// pq error code for unique_violation
const uniqueViolationCode = "23505"

var bookingColumns = []string{
	"id",
	"profile_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"payment_status",
	"charge_amount",
	"confirmation_sent",
	"last_reminder_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями зала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает подтвержденное бронирование.
// Частичный уникальный индекс на (booking_date, start_time, end_time)
// WHERE status = 'confirmed' - авторитетная защита от двойного бронирования:
// нарушение уникальности транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"profile_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"payment_status",
			"charge_amount",
			"confirmation_sent",
		).
		Values(
			booking.ProfileID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.PaymentStatus,
			booking.ChargeAmount,
			booking.ConfirmationSent,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetConfirmedByDate получает подтвержденные бронирования на дату,
// отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE (для критической секции создания).
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsConfirmedSlot проверяет, существует ли подтвержденное бронирование
// точно на указанные дату и интервал. Проверка - оптимизация; гарантию дает
// уникальный индекс при вставке.
func (r *Repository) ExistsConfirmedSlot(ctx context.Context, date time.Time, start, end types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
			"status":       domain.StatusConfirmed,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedSlot - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// GetWithFilter получает бронирования с фильтрацией по дате, статусу
// и статусу оплаты (админская выдача)
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, start_time DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.PaymentStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetPendingPayment получает подтвержденные бронирования с неоплаченным
// статусом (вход reminder/cancellation sweep)
func (r *Repository) GetPendingPayment(ctx context.Context) ([]*domain.Booking, error) {
	return r.getByPayment(ctx, domain.PaymentPending, nil)
}

// GetPaidUnconfirmed получает оплаченные бронирования, по которым еще
// не отправлено подтверждение (вход confirmation sweep)
func (r *Repository) GetPaidUnconfirmed(ctx context.Context) ([]*domain.Booking, error) {
	notSent := false
	return r.getByPayment(ctx, domain.PaymentPaid, &notSent)
}

func (r *Repository) getByPayment(ctx context.Context, payment domain.PaymentStatus, confirmationSent *bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"status":         domain.StatusConfirmed,
			"payment_status": payment,
		}).
		OrderBy("created_at ASC")

	if confirmationSent != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"confirmation_sent": *confirmationSent})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByPayment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getByPayment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.update(ctx, "UpdateStatus", id, map[string]interface{}{
		"status": status,
	})
}

// UpdatePaymentStatus обновляет статус оплаты бронирования
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.update(ctx, "UpdatePaymentStatus", id, map[string]interface{}{
		"payment_status": status,
	})
}

// SetLastReminder проставляет время последнего напоминания об оплате
func (r *Repository) SetLastReminder(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, "SetLastReminder", id, map[string]interface{}{
		"last_reminder_at": at,
	})
}

// SetConfirmationSent помечает, что подтверждение оплаты отправлено
func (r *Repository) SetConfirmationSent(ctx context.Context, id int64) error {
	return r.update(ctx, "SetConfirmationSent", id, map[string]interface{}{
		"confirmation_sent": true,
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Where(squirrel.Eq{"id": id})
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

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime
	var lastReminderAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProfileID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.ChargeAmount,
		&booking.ConfirmationSent,
		&lastReminderAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	if lastReminderAt.Valid {
		booking.LastReminderAt = &lastReminderAt.Time
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime
		var lastReminderAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ProfileID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.ChargeAmount,
			&booking.ConfirmationSent,
			&lastReminderAt,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		if lastReminderAt.Valid {
			booking.LastReminderAt = &lastReminderAt.Time
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации рабочих часов зала.
// Конфигурация - синглтон: в таблице хранится ровно одна строка.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущую конфигурацию рабочих часов
func (r *Repository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"working_days",
		"updated_at",
	).
		From("booking_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BookingSettings
	var workingDays pq.Int64Array
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StartTime,
		&s.EndTime,
		&s.SlotDurationMinutes,
		&workingDays,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.WorkingDays = make([]int, len(workingDays))
	for i, d := range workingDays {
		s.WorkingDays[i] = int(d)
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update обновляет конфигурацию рабочих часов (админская операция)
func (r *Repository) Update(ctx context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make(pq.Int64Array, len(s.WorkingDays))
	for i, d := range s.WorkingDays {
		workingDays[i] = int64(d)
	}

	query, args, err := psqlbuilder.Update("booking_settings").
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("slot_duration_minutes", s.SlotDurationMinutes).
		Set("working_days", workingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Suffix("RETURNING id, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}

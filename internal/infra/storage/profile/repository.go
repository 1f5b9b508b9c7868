package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var profileColumns = []string{
	"id",
	"phone_number",
	"name",
	"monthly_charge",
	"maintenance_paid",
	"created_at",
}

// Repository репозиторий для работы с профилями жителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль жителя.
// Уникальность номера телефона обеспечивает констрейнт в БД;
// нарушение транслируется в ErrPhoneExists.
func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns(
			"phone_number",
			"name",
			"monthly_charge",
			"maintenance_paid",
		).
		Values(
			profile.PhoneNumber,
			profile.Name,
			profile.MonthlyCharge,
			profile.MaintenancePaid,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	profile.CreatedAt = createdAt.Time

	return profile, nil
}

// GetByPhone получает профиль по номеру телефона (E.164)
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Profile, error) {
	return r.getOne(ctx, "GetByPhone", squirrel.Eq{"phone_number": phoneNumber})
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetAll получает все профили, отсортированные по дате создания
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var profile domain.Profile
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.PhoneNumber,
		&profile.Name,
		&profile.MonthlyCharge,
		&profile.MaintenancePaid,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan profile: %v", ErrScanRow, op, err)
	}

	profile.CreatedAt = createdAt.Time

	return &profile, nil
}

func scanProfile(rows *sql.Rows) (*domain.Profile, error) {
	var profile domain.Profile
	var createdAt sql.NullTime

	err := rows.Scan(
		&profile.ID,
		&profile.PhoneNumber,
		&profile.Name,
		&profile.MonthlyCharge,
		&profile.MaintenancePaid,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	profile.CreatedAt = createdAt.Time

	return &profile, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

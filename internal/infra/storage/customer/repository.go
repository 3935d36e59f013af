package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/homeshine/HSB-BookingService/internal/domain"
	"github.com/homeshine/HSB-BookingService/pkg/dbmetrics"
	"github.com/homeshine/HSB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert идемпотентно создает или обновляет клиента по номеру телефона.
// Гонка двух сессий с одним телефоном разрешается на стороне БД:
// INSERT ... ON CONFLICT (phone) DO UPDATE атомарен, клиентских блокировок не требуется.
// Повторная отправка с тем же телефоном не создает вторую строку,
// имя и адрес обновляются на месте.
func (r *Repository) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"name",
			"email",
			"phone",
			"address",
		).
		Values(
			customer.Name,
			customer.Email,
			customer.Phone,
			customer.Address,
		).
		Suffix(`ON CONFLICT (phone) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"address",
		"created_at",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}

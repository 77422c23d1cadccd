package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rateserve/fx_rates_app/internal/apperrors"
	"github.com/rateserve/fx_rates_app/internal/core/domain"
	portsrepo "github.com/rateserve/fx_rates_app/internal/core/ports/repositories"
	"github.com/rateserve/fx_rates_app/internal/models"
	"github.com/rateserve/fx_rates_app/internal/utils/mapping"
)

const rateColumns = `exchange_rate_id, currency_from, currency_to, rate, retrieved_at, created_at, updated_at`

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRates inserts all given rows inside a single transaction so a
// partially-parsed feed never becomes a partially-stored snapshot. Readers
// see either the full prior state or the full new one, never a mix.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	if len(rates) == 0 {
		return []domain.ExchangeRate{}, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, &apperrors.StorageError{Err: err}
	}

	query := `
		INSERT INTO exchange_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, rate := range rates {
		modelRate := mapping.ToModelExchangeRate(rate)
		_, err = tx.Exec(ctx, query,
			modelRate.ExchangeRateID,
			modelRate.CurrencyFrom,
			modelRate.CurrencyTo,
			modelRate.Rate,
			modelRate.RetrievedAt,
			modelRate.CreatedAt,
			modelRate.UpdatedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return nil, &apperrors.StorageError{Err: fmt.Errorf("failed to insert rate %s/%s: %w", rate.CurrencyFrom, rate.CurrencyTo, err)}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &apperrors.StorageError{Err: fmt.Errorf("failed to commit rate batch: %w", err)}
	}

	return rates, nil
}

// ListExchangeRates compiles the filter spec into predicates and order
// clauses, then returns the requested page plus the total match count.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	whereSQL, args, orderSQL := BuildRateQuery(filter)

	baseQuery := "FROM exchange_rates"
	if whereSQL != "" {
		baseQuery += " WHERE " + whereSQL
	}

	var total int
	err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count exchange rates: %w", err)
	}

	if total == 0 {
		return []domain.ExchangeRate{}, 0, nil
	}

	selectQuery := "SELECT " + rateColumns + " " + baseQuery
	if orderSQL != "" {
		selectQuery += " ORDER BY " + orderSQL
	}
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * pageSize
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, pageSize, offset)
	}

	rows, err := r.Pool.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, scanModelRate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), total, nil
}

// FindExchangeRateByID retrieves one rate row by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM exchange_rates
		WHERE exchange_rate_id = $1;
	`
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, rateID).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.CurrencyFrom,
		&modelRate.CurrencyTo,
		&modelRate.Rate,
		&modelRate.RetrievedAt,
		&modelRate.CreatedAt,
		&modelRate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate by ID %s: %w", rateID, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// CountExchangeRates returns the total number of stored rate rows.
func (r *PgxExchangeRateRepository) CountExchangeRates(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_rates;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exchange rates: %w", err)
	}
	return count, nil
}

func scanModelRate(row pgx.CollectableRow) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.CurrencyFrom,
		&m.CurrencyTo,
		&m.Rate,
		&m.RetrievedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

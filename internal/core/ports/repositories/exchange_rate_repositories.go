package repositories

import (
	"context"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
)

// ExchangeRateRepository is the persistence abstraction over rate rows.
type ExchangeRateRepository interface {
	// SaveExchangeRates persists the given rows inside a single transaction
	// and returns them in input order. Any individual failure rolls back the
	// whole batch and surfaces a StorageError.
	SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) ([]domain.ExchangeRate, error)

	// ListExchangeRates returns the page of rows matching the filter spec
	// plus the total match count.
	ListExchangeRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.ExchangeRate, int, error)

	// FindExchangeRateByID returns one row or apperrors.ErrNotFound.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// CountExchangeRates returns the total number of stored rows.
	CountExchangeRates(ctx context.Context) (int, error)
}

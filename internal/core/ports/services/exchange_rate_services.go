package services

import (
	"context"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
)

// FetchOptions controls one ingestion run. Force requests a fetch even when
// the store already holds rows; callers decide, never the environment.
type FetchOptions struct {
	Force bool
}

// ExchangeRateSvcFacade is the service interface for the rate pipelines.
type ExchangeRateSvcFacade interface {
	// FetchAndStoreRates runs the ingestion pipeline (fetch, parse, store)
	// and returns the newly stored rows. With Force unset and a non-empty
	// store, the fetch is skipped and no rows are returned.
	FetchAndStoreRates(ctx context.Context, opts FetchOptions) ([]domain.ExchangeRate, error)

	// ListRates returns one page of rows matching the filter plus the total
	// match count.
	ListRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.ExchangeRate, int, error)

	// GetRateByID returns one row or apperrors.ErrNotFound.
	GetRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)
}

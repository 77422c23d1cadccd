package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rateserve/fx_rates_app/internal/core/domain"
	portsrepo "github.com/rateserve/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/rateserve/fx_rates_app/internal/core/ports/services"
	"github.com/rateserve/fx_rates_app/internal/ecb"
)

// RateFeed retrieves the raw daily feed payload. Satisfied by *ecb.Client.
type RateFeed interface {
	FetchDaily(ctx context.Context) ([]byte, error)
}

// ExchangeRateService provides the ingestion and query pipelines over the
// rate store.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepository
	feed     RateFeed
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository, feed RateFeed) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo: rateRepo,
		feed:     feed,
	}
}

// Ensure implementation matches interface
var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// FetchAndStoreRates runs one ingestion pass: fetch the feed, parse it and
// persist the snapshot in a single transaction. Any stage's failure aborts
// the run and leaves the store unchanged. Without Force, a non-empty store
// skips the fetch entirely and returns no new rows.
func (s *ExchangeRateService) FetchAndStoreRates(ctx context.Context, opts portssvc.FetchOptions) ([]domain.ExchangeRate, error) {
	if !opts.Force {
		count, err := s.rateRepo.CountExchangeRates(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing rates: %w", err)
		}
		if count > 0 {
			return []domain.ExchangeRate{}, nil
		}
	}

	payload, err := s.feed.FetchDaily(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := ecb.ParseDailyFeed(payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rates := make([]domain.ExchangeRate, len(parsed))
	for i, rec := range parsed {
		rates[i] = domain.ExchangeRate{
			ExchangeRateID: uuid.NewString(),
			CurrencyFrom:   rec.CurrencyFrom,
			CurrencyTo:     rec.CurrencyTo,
			Rate:           rec.Rate,
			RetrievedAt:    rec.RetrievedAt,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	}

	return s.rateRepo.SaveExchangeRates(ctx, rates)
}

// ListRates returns one page of rows matching the filter plus the total count.
func (s *ExchangeRateService) ListRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	if page < 1 {
		page = 1
	}
	return s.rateRepo.ListExchangeRates(ctx, filter, page, pageSize)
}

// GetRateByID returns one row or apperrors.ErrNotFound.
func (s *ExchangeRateService) GetRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindExchangeRateByID(ctx, rateID)
}

package dto_test

import (
	"testing"
	"time"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/rateserve/fx_rates_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRates(n int) []domain.ExchangeRate {
	retrieved := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	rates := make([]domain.ExchangeRate, n)
	for i := range rates {
		rates[i] = domain.ExchangeRate{
			ExchangeRateID: "rate-" + string(rune('a'+i)),
			CurrencyFrom:   "EUR",
			CurrencyTo:     "USD",
			Rate:           decimal.NewFromFloat(1.0876),
			RetrievedAt:    retrieved,
		}
	}
	return rates
}

func TestNewListRatesResponse_MiddlePage(t *testing.T) {
	resp := dto.NewListRatesResponse(sampleRates(15), 2, 15, 45, "/api/v1/exchange-rates")

	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 3, resp.Meta.LastPage)
	assert.Equal(t, 15, resp.Meta.PerPage)
	assert.Equal(t, 45, resp.Meta.Total)
	assert.Equal(t, "/api/v1/exchange-rates", resp.Meta.Path)
	require.NotNil(t, resp.Meta.From)
	require.NotNil(t, resp.Meta.To)
	assert.Equal(t, 16, *resp.Meta.From)
	assert.Equal(t, 30, *resp.Meta.To)

	assert.Equal(t, "/api/v1/exchange-rates?page=1", resp.Links.First)
	assert.Equal(t, "/api/v1/exchange-rates?page=3", resp.Links.Last)
	require.NotNil(t, resp.Links.Prev)
	require.NotNil(t, resp.Links.Next)
	assert.Equal(t, "/api/v1/exchange-rates?page=1", *resp.Links.Prev)
	assert.Equal(t, "/api/v1/exchange-rates?page=3", *resp.Links.Next)
}

func TestNewListRatesResponse_FirstPage(t *testing.T) {
	resp := dto.NewListRatesResponse(sampleRates(15), 1, 15, 45, "/api/v1/exchange-rates")
	assert.Nil(t, resp.Links.Prev)
	require.NotNil(t, resp.Links.Next)
	assert.Equal(t, 1, *resp.Meta.From)
	assert.Equal(t, 15, *resp.Meta.To)
}

func TestNewListRatesResponse_LastPartialPage(t *testing.T) {
	resp := dto.NewListRatesResponse(sampleRates(5), 3, 15, 35, "/api/v1/exchange-rates")
	assert.Equal(t, 3, resp.Meta.LastPage)
	assert.Nil(t, resp.Links.Next)
	require.NotNil(t, resp.Meta.From)
	require.NotNil(t, resp.Meta.To)
	assert.Equal(t, 31, *resp.Meta.From)
	assert.Equal(t, 35, *resp.Meta.To)
}

func TestNewListRatesResponse_EmptyResult(t *testing.T) {
	resp := dto.NewListRatesResponse(nil, 1, 15, 0, "/api/v1/exchange-rates")
	assert.Empty(t, resp.Data)
	assert.Equal(t, 1, resp.Meta.LastPage)
	assert.Nil(t, resp.Meta.From)
	assert.Nil(t, resp.Meta.To)
	assert.Nil(t, resp.Links.Prev)
	assert.Nil(t, resp.Links.Next)
	assert.Equal(t, "/api/v1/exchange-rates?page=1", resp.Links.Last)
}

func TestToRateResponse_FormatsTimestamp(t *testing.T) {
	rate := domain.ExchangeRate{
		ExchangeRateID: "abc",
		CurrencyFrom:   "EUR",
		CurrencyTo:     "JPY",
		Rate:           decimal.NewFromFloat(157.83),
		RetrievedAt:    time.Date(2025, 7, 19, 9, 30, 15, 0, time.UTC),
	}
	resp := dto.ToRateResponse(&rate)
	assert.Equal(t, "2025-07-19 09:30:15", resp.RetrievedAt)
	assert.Equal(t, "abc", resp.ID)
}

func TestToRateDetailResponse_IncludesAuditTimestamps(t *testing.T) {
	rate := domain.ExchangeRate{
		ExchangeRateID: "abc",
		CurrencyFrom:   "EUR",
		CurrencyTo:     "USD",
		Rate:           decimal.NewFromFloat(1.0876),
		RetrievedAt:    time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC),
	}
	rate.CreatedAt = time.Date(2025, 7, 19, 16, 0, 5, 0, time.UTC)
	rate.UpdatedAt = time.Date(2025, 7, 20, 8, 0, 0, 0, time.UTC)

	env := dto.ToRateDetailResponse(&rate)
	assert.Equal(t, "2025-07-19 16:00:05", env.Data.CreatedAt)
	assert.Equal(t, "2025-07-20 08:00:00", env.Data.UpdatedAt)
}

func TestNewFetchRatesResponse(t *testing.T) {
	resp := dto.NewFetchRatesResponse(sampleRates(3))
	assert.Equal(t, 3, resp.Stored)
	assert.Equal(t, "2025-07-19 00:00:00", resp.RetrievedAt)

	empty := dto.NewFetchRatesResponse(nil)
	assert.Equal(t, 0, empty.Stored)
	assert.Empty(t, empty.RetrievedAt)
}

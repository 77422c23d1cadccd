package dto

import (
	"fmt"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// timestampLayout is the external textual form of all rate timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// RateResponse is the list-view serialization of one exchange rate.
type RateResponse struct {
	ID           string          `json:"id"`
	CurrencyFrom string          `json:"currencyFrom"`
	CurrencyTo   string          `json:"currencyTo"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	RetrievedAt  string          `json:"retrievedAt"`
}

// RateDetailResponse is the single-item view; it additionally exposes the
// bookkeeping timestamps.
type RateDetailResponse struct {
	RateResponse
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PaginationLinks carries the navigation URLs of a paginated envelope.
type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PaginationMeta carries the page arithmetic of a paginated envelope.
type PaginationMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int    `json:"total"`
}

// ListRatesResponse is the paginated list envelope.
type ListRatesResponse struct {
	Data  []RateResponse  `json:"data"`
	Links PaginationLinks `json:"links"`
	Meta  PaginationMeta  `json:"meta"`
}

// RateDetailEnvelope wraps the single-item view.
type RateDetailEnvelope struct {
	Data RateDetailResponse `json:"data"`
}

// ToRateResponse converts a domain rate to its list-view serialization.
func ToRateResponse(rate *domain.ExchangeRate) RateResponse {
	return RateResponse{
		ID:           rate.ExchangeRateID,
		CurrencyFrom: rate.CurrencyFrom,
		CurrencyTo:   rate.CurrencyTo,
		ExchangeRate: rate.Rate,
		RetrievedAt:  rate.RetrievedAt.Format(timestampLayout),
	}
}

// ToRateDetailResponse converts a domain rate to the single-item view.
func ToRateDetailResponse(rate *domain.ExchangeRate) RateDetailEnvelope {
	return RateDetailEnvelope{
		Data: RateDetailResponse{
			RateResponse: ToRateResponse(rate),
			CreatedAt:    rate.CreatedAt.Format(timestampLayout),
			UpdatedAt:    rate.UpdatedAt.Format(timestampLayout),
		},
	}
}

// NewListRatesResponse assembles the paginated envelope for one result page.
// path is the request path without query parameters.
func NewListRatesResponse(rates []domain.ExchangeRate, page, perPage, total int, path string) ListRatesResponse {
	data := make([]RateResponse, len(rates))
	for i := range rates {
		data[i] = ToRateResponse(&rates[i])
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d", path, p)
	}

	links := PaginationLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	meta := PaginationMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if len(data) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(data) - 1
		meta.From = &from
		meta.To = &to
	}

	return ListRatesResponse{Data: data, Links: links, Meta: meta}
}

// FetchRatesResponse reports one on-demand ingestion run.
type FetchRatesResponse struct {
	Stored      int    `json:"stored"`
	RetrievedAt string `json:"retrievedAt,omitempty"`
}

// NewFetchRatesResponse summarizes the stored rows of one ingestion run.
func NewFetchRatesResponse(rates []domain.ExchangeRate) FetchRatesResponse {
	resp := FetchRatesResponse{Stored: len(rates)}
	if len(rates) > 0 {
		resp.RetrievedAt = rates[0].RetrievedAt.Format(timestampLayout)
	}
	return resp
}

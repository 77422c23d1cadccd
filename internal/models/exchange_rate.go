package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the persistence model for one rate row.
// Note: Rate uses github.com/shopspring/decimal for a precise decimal type.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	CurrencyFrom   string          `db:"currency_from"`
	CurrencyTo     string          `db:"currency_to"` // Indexed
	Rate           decimal.Decimal `db:"rate"`
	RetrievedAt    time.Time       `db:"retrieved_at"`
	AuditFields
}

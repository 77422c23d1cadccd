package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one normalized rate row from a daily feed snapshot.
// RetrievedAt is the feed's declared as-of time, distinct from CreatedAt.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	CurrencyFrom   string          `json:"currencyFrom"`   // Base currency of the quote ("EUR" for the ECB feed)
	CurrencyTo     string          `json:"currencyTo"`     // Quoted currency
	Rate           decimal.Decimal `json:"rate"`
	RetrievedAt    time.Time       `json:"retrievedAt"`
	AuditFields
}

// RateFilter is the allow-listed filter/sort spec for listing exchange rates.
// Each field carries OR semantics within itself; fields combine with AND.
// Sort entries are external field names, optionally prefixed with "-" for
// descending order; unrecognized entries are skipped by the compiler.
type RateFilter struct {
	CurrencyFrom []string
	CurrencyTo   []string
	ExchangeRate []decimal.Decimal
	RetrievedAt  []string
	Sort         []string
}

// IsZero reports whether no filter or sort directive is set.
func (f RateFilter) IsZero() bool {
	return len(f.CurrencyFrom) == 0 && len(f.CurrencyTo) == 0 &&
		len(f.ExchangeRate) == 0 && len(f.RetrievedAt) == 0 && len(f.Sort) == 0
}

package mapping

import (
	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/rateserve/fx_rates_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		CurrencyFrom:   d.CurrencyFrom,
		CurrencyTo:     d.CurrencyTo,
		Rate:           d.Rate,
		RetrievedAt:    d.RetrievedAt,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		CurrencyFrom:   m.CurrencyFrom,
		CurrencyTo:     m.CurrencyTo,
		Rate:           m.Rate,
		RetrievedAt:    m.RetrievedAt,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainExchangeRateSlice converts a slice of model rates to domain rates.
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}

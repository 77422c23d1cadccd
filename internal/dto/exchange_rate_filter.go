package dto

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rateserve/fx_rates_app/internal/apperrors"
	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var filterValidate = validator.New()

// retrievedAtPattern accepts "YYYY-MM-DD HH:MM:SS" or any prefix of it down
// to a bare date, since the filter matches by substring.
var retrievedAtPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}( \d{2}(:\d{2}(:\d{2})?)?)?$`)

// ParseRateFilter extracts the allow-listed filter/sort spec from query
// parameters. The canonical surface is the bracketed multi-value style:
//
//	filter[currencyTo]=USD
//	filter[currencyTo]=USD,GBP
//	filter[currencyTo][]=USD&filter[currencyTo][]=GBP
//	filter[sort]=-retrievedAt
//
// Values failing validation yield an error wrapping apperrors.ErrValidation.
// Sort entries are not validated here: the compiler drops unknown fields
// without erroring.
func ParseRateFilter(values url.Values) (domain.RateFilter, error) {
	var filter domain.RateFilter
	var err error

	if filter.CurrencyFrom, err = currencyValues(values, "currencyFrom"); err != nil {
		return domain.RateFilter{}, err
	}
	if filter.CurrencyTo, err = currencyValues(values, "currencyTo"); err != nil {
		return domain.RateFilter{}, err
	}

	for _, raw := range filterValues(values, "exchangeRate") {
		rate, convErr := decimal.NewFromString(raw)
		if convErr != nil {
			return domain.RateFilter{}, fmt.Errorf("%w: filter[exchangeRate] value '%s' must be numeric", apperrors.ErrValidation, raw)
		}
		if rate.IsNegative() {
			return domain.RateFilter{}, fmt.Errorf("%w: filter[exchangeRate] value '%s' must be minimum 0", apperrors.ErrValidation, raw)
		}
		filter.ExchangeRate = append(filter.ExchangeRate, rate)
	}

	for _, raw := range filterValues(values, "retrievedAt") {
		if !retrievedAtPattern.MatchString(raw) {
			return domain.RateFilter{}, fmt.Errorf("%w: filter[retrievedAt] value '%s' must match the format YYYY-MM-DD HH:MM:SS or a prefix of it", apperrors.ErrValidation, raw)
		}
		filter.RetrievedAt = append(filter.RetrievedAt, raw)
	}

	filter.Sort = filterValues(values, "sort")

	return filter, nil
}

func currencyValues(values url.Values, key string) ([]string, error) {
	codes := filterValues(values, key)
	for _, code := range codes {
		if err := filterValidate.Var(code, "len=3,alpha"); err != nil {
			return nil, fmt.Errorf("%w: filter[%s] value '%s' must be a 3-letter currency code", apperrors.ErrValidation, key, code)
		}
	}
	return codes, nil
}

// filterValues collects the values of one filter key across the scalar,
// comma-separated and array forms, preserving their given order.
func filterValues(values url.Values, key string) []string {
	var out []string
	for _, raw := range values["filter["+key+"]"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	for _, raw := range values["filter["+key+"][]"] {
		if raw = strings.TrimSpace(raw); raw != "" {
			out = append(out, raw)
		}
	}
	return out
}

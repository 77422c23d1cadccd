package pgsql

import (
	"testing"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRateQuery_EmptyFilter(t *testing.T) {
	where, args, order := BuildRateQuery(domain.RateFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
	assert.Empty(t, order)
}

func TestBuildRateQuery_CurrencyToMembership(t *testing.T) {
	where, args, order := BuildRateQuery(domain.RateFilter{
		CurrencyTo: []string{"USD", "JPY"},
	})
	assert.Equal(t, "currency_to IN ($1, $2)", where)
	assert.Equal(t, []any{"USD", "JPY"}, args)
	assert.Empty(t, order)
}

func TestBuildRateQuery_ExchangeRateMembership(t *testing.T) {
	one := decimal.NewFromFloat(1.0876)
	where, args, _ := BuildRateQuery(domain.RateFilter{
		ExchangeRate: []decimal.Decimal{one},
	})
	assert.Equal(t, "rate IN ($1)", where)
	require.Len(t, args, 1)
	got, ok := args[0].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, one.Equal(got))
}

func TestBuildRateQuery_FieldsCombineWithAND(t *testing.T) {
	where, args, _ := BuildRateQuery(domain.RateFilter{
		CurrencyFrom: []string{"EUR"},
		CurrencyTo:   []string{"USD", "GBP"},
	})
	assert.Equal(t, "currency_from IN ($1) AND currency_to IN ($2, $3)", where)
	assert.Equal(t, []any{"EUR", "USD", "GBP"}, args)
}

func TestBuildRateQuery_RetrievedAtSubstringMatch(t *testing.T) {
	where, args, _ := BuildRateQuery(domain.RateFilter{
		RetrievedAt: []string{"2025-07-19", "2025-07-20 09"},
	})
	want := "(to_char(retrieved_at, 'YYYY-MM-DD HH24:MI:SS') LIKE $1 OR to_char(retrieved_at, 'YYYY-MM-DD HH24:MI:SS') LIKE $2)"
	assert.Equal(t, want, where)
	assert.Equal(t, []any{"%2025-07-19%", "%2025-07-20 09%"}, args)
}

func TestBuildRateQuery_PlaceholdersNumberAcrossClauses(t *testing.T) {
	where, args, _ := BuildRateQuery(domain.RateFilter{
		CurrencyTo:  []string{"USD"},
		RetrievedAt: []string{"2025-07-19"},
	})
	want := "currency_to IN ($1) AND (to_char(retrieved_at, 'YYYY-MM-DD HH24:MI:SS') LIKE $2)"
	assert.Equal(t, want, where)
	assert.Len(t, args, 2)
}

func TestBuildRateQuery_SortDirections(t *testing.T) {
	_, _, order := BuildRateQuery(domain.RateFilter{
		Sort: []string{"-retrievedAt", "currencyTo"},
	})
	assert.Equal(t, "retrieved_at DESC, currency_to ASC", order)
}

func TestBuildRateQuery_SortMapsExternalNames(t *testing.T) {
	_, _, order := BuildRateQuery(domain.RateFilter{
		Sort: []string{"exchangeRate", "-currencyFrom"},
	})
	assert.Equal(t, "rate ASC, currency_from DESC", order)
}

func TestBuildRateQuery_UnknownSortFieldsSkipped(t *testing.T) {
	_, _, order := BuildRateQuery(domain.RateFilter{
		Sort: []string{"id", "-createdAt", "currencyTo"},
	})
	assert.Equal(t, "currency_to ASC", order)
}

func TestBuildRateQuery_AllSortFieldsUnknown(t *testing.T) {
	_, _, order := BuildRateQuery(domain.RateFilter{
		Sort: []string{"bogus", "-also_bogus"},
	})
	assert.Empty(t, order)
}

func TestBuildRateQuery_StatelessAcrossCalls(t *testing.T) {
	f := domain.RateFilter{
		CurrencyTo: []string{"USD"},
		Sort:       []string{"-retrievedAt"},
	}
	where1, args1, order1 := BuildRateQuery(f)
	where2, args2, order2 := BuildRateQuery(f)
	assert.Equal(t, where1, where2)
	assert.Equal(t, args1, args2)
	assert.Equal(t, order1, order2)
}

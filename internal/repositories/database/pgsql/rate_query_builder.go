package pgsql

import (
	"fmt"
	"strings"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
)

// rateSortColumns maps external (camelCase) sortable field names to their
// storage columns. It doubles as the sort allow-list: anything outside it is
// dropped instead of reaching the SQL text.
var rateSortColumns = map[string]string{
	"currencyTo":   "currency_to",
	"currencyFrom": "currency_from",
	"exchangeRate": "rate",
	"retrievedAt":  "retrieved_at",
}

// rateQuery accumulates the WHERE conditions, positional arguments and ORDER
// BY entries for one compilation. A fresh value is built per call, so
// concurrent requests never share compiler state.
type rateQuery struct {
	conditions []string
	args       []any
	orderBy    []string
}

// placeholder registers one argument and returns its positional marker.
func (q *rateQuery) placeholder(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// rateClauses is the fixed dispatch table from filter key to clause builder.
// Only keys listed here can ever influence the generated SQL; user input
// selects among them but never contributes column or direction tokens.
var rateClauses = []struct {
	key   string
	apply func(f domain.RateFilter, q *rateQuery)
}{
	{"currencyFrom", applyCurrencyFrom},
	{"currencyTo", applyCurrencyTo},
	{"exchangeRate", applyExchangeRate},
	{"retrievedAt", applyRetrievedAt},
	{"sort", applySort},
}

// BuildRateQuery compiles a filter spec into a WHERE fragment (without the
// WHERE keyword), its positional arguments numbered from $1, and an ORDER BY
// fragment (without the ORDER BY keyword). Empty fragments mean the caller
// adds nothing. The function is pure: it neither executes the query nor
// retains state between invocations.
func BuildRateQuery(f domain.RateFilter) (whereSQL string, args []any, orderSQL string) {
	q := &rateQuery{}
	for _, clause := range rateClauses {
		clause.apply(f, q)
	}
	return strings.Join(q.conditions, " AND "), q.args, strings.Join(q.orderBy, ", ")
}

func applyCurrencyFrom(f domain.RateFilter, q *rateQuery) {
	applyMembership(q, "currency_from", toAnySlice(f.CurrencyFrom))
}

func applyCurrencyTo(f domain.RateFilter, q *rateQuery) {
	applyMembership(q, "currency_to", toAnySlice(f.CurrencyTo))
}

func applyExchangeRate(f domain.RateFilter, q *rateQuery) {
	values := make([]any, len(f.ExchangeRate))
	for i, v := range f.ExchangeRate {
		values[i] = v
	}
	applyMembership(q, "rate", values)
}

// applyMembership emits `column IN ($n, ...)`: OR semantics within one field,
// joined to the other fields' conditions with AND.
func applyMembership(q *rateQuery, column string, values []any) {
	if len(values) == 0 {
		return
	}
	markers := make([]string, len(values))
	for i, v := range values {
		markers[i] = q.placeholder(v)
	}
	q.conditions = append(q.conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(markers, ", ")))
}

// applyRetrievedAt compiles substring matches against the textual form of the
// timestamp, ORed across the listed values. A date-only value therefore
// matches the whole day. This is intentionally not a range filter and can
// produce false positives on coincidental substring overlaps.
func applyRetrievedAt(f domain.RateFilter, q *rateQuery) {
	if len(f.RetrievedAt) == 0 {
		return
	}
	matches := make([]string, len(f.RetrievedAt))
	for i, v := range f.RetrievedAt {
		marker := q.placeholder("%" + v + "%")
		matches[i] = fmt.Sprintf("to_char(retrieved_at, 'YYYY-MM-DD HH24:MI:SS') LIKE %s", marker)
	}
	q.conditions = append(q.conditions, "("+strings.Join(matches, " OR ")+")")
}

// applySort appends one order entry per recognized sort field, in the given
// order. A leading '-' selects descending. Fields outside the allow-list are
// skipped silently so a malformed sort request stays non-fatal; when nothing
// survives, no ORDER BY is emitted and the store's natural order applies.
func applySort(f domain.RateFilter, q *rateQuery) {
	for _, field := range f.Sort {
		direction := "ASC"
		name := field
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			name = field[1:]
		}
		column, ok := rateSortColumns[name]
		if !ok {
			continue
		}
		q.orderBy = append(q.orderBy, column+" "+direction)
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

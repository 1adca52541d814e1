// Package zakat derives the annual zakat records from the raw book data:
// year markers, asset holdings, and the payment ledger.
package zakat

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// Warning is a non-fatal data-quality finding. Computation always proceeds;
// warnings are surfaced to the caller for review.
type Warning struct {
	Date   time.Time
	Source string // "years" or "holdings"
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Date.Format("2006-01-02"), w.Source, w.Detail)
}

// Aggregate is one zakat year's marker joined with its asset totals. Years
// without a matching holdings snapshot get zero totals — a year can exist
// before its balances are entered.
type Aggregate struct {
	Marker model.YearMarker
	Stocks decimal.Decimal
	Cash   decimal.Decimal
	Debts  decimal.Decimal
}

// AggregateYears matches holdings to year markers by exact date and returns
// the per-year aggregates in chronological order. Duplicate marker dates and
// duplicate (date, kind, account) holding rows are flagged; the first
// encountered row wins in both cases.
func AggregateYears(markers []model.YearMarker, holdings []model.Holding) ([]Aggregate, []Warning) {
	var warnings []Warning

	var kept []model.YearMarker
	seenDates := make(map[time.Time]bool)
	for _, m := range markers {
		key := m.Date.UTC().Truncate(24 * time.Hour)
		if seenDates[key] {
			warnings = append(warnings, Warning{
				Date:   m.Date,
				Source: "years",
				Detail: "duplicate zakat year date, using first entry",
			})
			continue
		}
		seenDates[key] = true
		kept = append(kept, m)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })

	type holdingKey struct {
		date    time.Time
		kind    model.HoldingKind
		account string
	}
	seenHoldings := make(map[holdingKey]bool)
	totals := make(map[time.Time]map[model.HoldingKind]decimal.Decimal)
	for _, h := range holdings {
		dateKey := h.Date.UTC().Truncate(24 * time.Hour)
		hk := holdingKey{dateKey, h.Kind, h.Account}
		if seenHoldings[hk] {
			warnings = append(warnings, Warning{
				Date:   h.Date,
				Source: "holdings",
				Detail: fmt.Sprintf("duplicate %s account %q, using first entry", h.Kind, h.Account),
			})
			continue
		}
		seenHoldings[hk] = true

		if totals[dateKey] == nil {
			totals[dateKey] = make(map[model.HoldingKind]decimal.Decimal)
		}
		totals[dateKey][h.Kind] = totals[dateKey][h.Kind].Add(h.Balance)
	}

	aggs := make([]Aggregate, len(kept))
	for i, m := range kept {
		byKind := totals[m.Date.UTC().Truncate(24*time.Hour)]
		aggs[i] = Aggregate{
			Marker: m,
			Stocks: byKind[model.KindStock],
			Cash:   byKind[model.KindCash],
			Debts:  byKind[model.KindDebt],
		}
	}
	return aggs, warnings
}

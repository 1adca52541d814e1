// Package report provides read-only queries over the payment ledger. Every
// query recomputes from the entries it is given; there is no cached state.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// Period is a zakat-year date interval (Start, End]. A nil Start means the
// period extends back indefinitely (the first zakat year).
type Period struct {
	Start *time.Time
	End   time.Time
}

// Contains reports whether d falls inside the period. The end date itself is
// included; the start date is not.
func (p Period) Contains(d time.Time) bool {
	if d.After(p.End) {
		return false
	}
	if p.Start != nil && !d.After(*p.Start) {
		return false
	}
	return true
}

// PeriodFor returns the period owned by the record whose marker date equals
// markerDate. Records must be in chronological order, as produced by the
// calculator.
func PeriodFor(records []model.ZakatYearRecord, markerDate time.Time) (Period, bool) {
	for i, r := range records {
		if r.Date.Equal(markerDate) {
			p := Period{End: r.Date}
			if i > 0 {
				start := records[i-1].Date
				p.Start = &start
			}
			return p, true
		}
	}
	return Period{}, false
}

// TypeTotal is the total paid under one payment type.
type TypeTotal struct {
	Type  string
	Total decimal.Decimal
}

// ByType sums total paid (amount + fees) per payment type, in registry
// order. An empty recipient matches all recipients; a nil period matches all
// dates.
func ByType(entries []model.Entry, types []string, recipient string, period *Period) []TypeTotal {
	totals := make([]TypeTotal, len(types))
	for i, typ := range types {
		totals[i] = TypeTotal{Type: typ, Total: decimal.Zero}
	}

	index := make(map[string]int, len(types))
	for i, typ := range types {
		index[typ] = i
	}

	for _, e := range entries {
		if !matches(e, recipient, period) {
			continue
		}
		i, ok := index[e.Type]
		if !ok {
			// Entries keep types removed from the registry; they simply
			// fall out of the breakdown.
			continue
		}
		totals[i].Total = totals[i].Total.Add(e.TotalPaid())
	}
	return totals
}

// RecipientSummary returns the total paid and entry count under the same
// filters as ByType, regardless of payment type.
func RecipientSummary(entries []model.Entry, recipient string, period *Period) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		if !matches(e, recipient, period) {
			continue
		}
		total = total.Add(e.TotalPaid())
		count++
	}
	return total, count
}

func matches(e model.Entry, recipient string, period *Period) bool {
	if recipient != "" && e.Recipient != recipient {
		return false
	}
	if period != nil && !period.Contains(e.Date) {
		return false
	}
	return true
}

// ServiceSummary is the all-time usage of one transfer service.
type ServiceSummary struct {
	Service string
	Amount  decimal.Decimal
	Fees    decimal.Decimal
	Count   int
}

// ServiceFees sums amounts, fees, and entry counts per transfer service in
// registry order, across the whole ledger. Never filtered by recipient or
// year.
func ServiceFees(entries []model.Entry, services []string) []ServiceSummary {
	summaries := make([]ServiceSummary, len(services))
	index := make(map[string]int, len(services))
	for i, svc := range services {
		summaries[i] = ServiceSummary{Service: svc, Amount: decimal.Zero, Fees: decimal.Zero}
		index[svc] = i
	}

	for _, e := range entries {
		i, ok := index[e.Service]
		if !ok {
			continue
		}
		summaries[i].Amount = summaries[i].Amount.Add(e.Amount)
		summaries[i].Fees = summaries[i].Fees.Add(e.Fees)
		summaries[i].Count++
	}
	return summaries
}

// Dashboard is the headline totals block shown above the year table.
type Dashboard struct {
	TotalOwed   decimal.Decimal // zakat due summed across all years
	PaidByType  []TypeTotal     // all-time paid per payment type
	Outstanding decimal.Decimal // total owed minus all-time zakat paid
}

// BuildDashboard computes the headline totals from the derived records and
// the full ledger.
func BuildDashboard(records []model.ZakatYearRecord, entries []model.Entry, types []string, zakatType string) Dashboard {
	owed := decimal.Zero
	for _, r := range records {
		owed = owed.Add(r.ZakatDue)
	}

	paidByType := ByType(entries, types, "", nil)

	zakatPaid := decimal.Zero
	for _, tt := range paidByType {
		if tt.Type == zakatType {
			zakatPaid = tt.Total
		}
	}

	return Dashboard{
		TotalOwed:   owed,
		PaidByType:  paidByType,
		Outstanding: owed.Sub(zakatPaid),
	}
}

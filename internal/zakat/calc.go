package zakat

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// Rate is the zakat rate: 2.5% of net zakatable assets.
var Rate = decimal.RequireFromString("0.025")

// Params holds the settings the recurrence needs.
type Params struct {
	ZakatType   string          // ledger payment type that settles zakat due
	GoldNisabOz decimal.Decimal // nisab threshold in troy oz of gold
}

// Nisab returns the wealth threshold for a spot price and an ounce constant.
func Nisab(pricePerOz, ounces decimal.Decimal) decimal.Decimal {
	return pricePerOz.Mul(ounces)
}

// ComputeRecords runs the forward recurrence over chronologically ordered
// aggregates and produces the fully derived year records. Single pass: each
// year's brought-forward carry depends only on the previous year's running
// balance. All arithmetic keeps full precision; nothing is rounded between
// steps.
func ComputeRecords(aggs []Aggregate, entries []model.Entry, p Params) []model.ZakatYearRecord {
	records := make([]model.ZakatYearRecord, 0, len(aggs))

	brought := decimal.Zero
	var prevDate *time.Time
	for _, agg := range aggs {
		m := agg.Marker
		goldValue := m.GoldValue()
		net := agg.Stocks.Add(agg.Cash).Add(goldValue).Sub(agg.Debts)
		nisab := Nisab(m.GoldPriceOz, p.GoldNisabOz)

		// Due only at or above nisab; negative net never produces a
		// negative due.
		due := decimal.Zero
		if net.GreaterThanOrEqual(nisab) {
			due = net.Mul(Rate)
		}

		owed := due.Add(brought)
		paid := paidInPeriod(entries, p.ZakatType, prevDate, m.Date)

		// Overpayment is discarded, not carried as credit: the balance
		// clamps at zero.
		balance := owed.Sub(paid)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		records = append(records, model.ZakatYearRecord{
			Date:        m.Date,
			Stocks:      agg.Stocks,
			Cash:        agg.Cash,
			Debts:       agg.Debts,
			GoldPriceOz: m.GoldPriceOz,
			GoldOwnedOz: m.GoldOwnedOz,
			GoldValue:   goldValue,
			NetAssets:   net,
			Nisab:       nisab,
			ZakatDue:    due,
			Brought:     brought,
			TotalOwed:   owed,
			Paid:        paid,
			Balance:     balance,
			Status:      status(paid, owed),
		})

		brought = balance
		d := m.Date
		prevDate = &d
	}
	return records
}

// paidInPeriod sums zakat-type payments dated in (after, until]. A payment
// dated exactly on a marker date belongs to that year, not the next. The
// first year has no lower bound.
func paidInPeriod(entries []model.Entry, zakatType string, after *time.Time, until time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Type != zakatType {
			continue
		}
		if e.Date.After(until) {
			continue
		}
		if after != nil && !e.Date.After(*after) {
			continue
		}
		sum = sum.Add(e.TotalPaid())
	}
	return sum
}

func status(paid, owed decimal.Decimal) model.PaymentStatus {
	switch {
	case paid.IsZero():
		return model.StatusNotStarted
	case paid.GreaterThanOrEqual(owed):
		return model.StatusPaidInFull
	default:
		return model.StatusPartiallyPaid
	}
}

// ComputeYears is the full derivation: aggregate the raw book data, then run
// the recurrence. It is the one entry point adapters should use; it always
// recomputes every year so callers never observe partial state.
func ComputeYears(markers []model.YearMarker, holdings []model.Holding, entries []model.Entry, p Params) ([]model.ZakatYearRecord, []Warning) {
	aggs, warnings := AggregateYears(markers, holdings)
	return ComputeRecords(aggs, entries, p), warnings
}

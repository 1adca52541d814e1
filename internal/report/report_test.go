package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testTypes = []string{"Zakat", "Sadaqah", "Fitrana", "Qurbani"}

func fixtureEntries() []model.Entry {
	return []model.Entry{
		{ID: "2023-001", Date: date(2023, 3, 1), Type: "Zakat", Service: "Wise", Recipient: "Local Mosque", Amount: dec("100"), Fees: dec("2")},
		{ID: "2023-002", Date: date(2023, 8, 1), Type: "Sadaqah", Service: "Cash", Recipient: "Family Member", Amount: dec("50")},
		{ID: "2024-001", Date: date(2024, 1, 5), Type: "Zakat", Service: "Remitly", Recipient: "Local Mosque", Amount: dec("75"), Fees: dec("3.99")},
		{ID: "2024-002", Date: date(2024, 3, 20), Type: "Fitrana", Service: "Wise", Recipient: "Islamic Relief USA", Amount: dec("40"), Fees: dec("1")},
	}
}

func fixtureRecords() []model.ZakatYearRecord {
	return []model.ZakatYearRecord{
		{Date: date(2023, 4, 1), ZakatDue: dec("120")},
		{Date: date(2024, 4, 1), ZakatDue: dec("130")},
	}
}

func totalFor(totals []TypeTotal, typ string) decimal.Decimal {
	for _, tt := range totals {
		if tt.Type == typ {
			return tt.Total
		}
	}
	return decimal.Zero
}

func TestByTypeNoFilters(t *testing.T) {
	totals := ByType(fixtureEntries(), testTypes, "", nil)
	require.Len(t, totals, 4)
	assert.Equal(t, "Zakat", totals[0].Type, "registry order preserved")
	assert.True(t, totalFor(totals, "Zakat").Equal(dec("180.99")))
	assert.True(t, totalFor(totals, "Sadaqah").Equal(dec("50")))
	assert.True(t, totalFor(totals, "Fitrana").Equal(dec("41")))
	assert.True(t, totalFor(totals, "Qurbani").IsZero())
}

func TestByTypeRecipientFilter(t *testing.T) {
	totals := ByType(fixtureEntries(), testTypes, "Local Mosque", nil)
	assert.True(t, totalFor(totals, "Zakat").Equal(dec("180.99")))
	assert.True(t, totalFor(totals, "Sadaqah").IsZero())
}

func TestByTypeYearFilter(t *testing.T) {
	period, ok := PeriodFor(fixtureRecords(), date(2024, 4, 1))
	require.True(t, ok)

	totals := ByType(fixtureEntries(), testTypes, "", &period)
	assert.True(t, totalFor(totals, "Zakat").Equal(dec("78.99")), "only the 2024-period payment")
	assert.True(t, totalFor(totals, "Sadaqah").Equal(dec("50")), "aug 2023 falls after the 2023 marker")
}

func TestByTypeRemovedVocabularyValue(t *testing.T) {
	entries := append(fixtureEntries(), model.Entry{
		ID: "2024-003", Date: date(2024, 2, 1), Type: "Qurbani", Recipient: "Family Member", Amount: dec("200"),
	})
	// "Qurbani" cleared from the registry: its entries stay valid but drop
	// out of the breakdown.
	totals := ByType(entries, []string{"Zakat", "Sadaqah", "Fitrana"}, "", nil)
	require.Len(t, totals, 3)
	for _, tt := range totals {
		assert.NotEqual(t, "Qurbani", tt.Type)
	}
}

func TestPeriodFor(t *testing.T) {
	records := fixtureRecords()

	first, ok := PeriodFor(records, date(2023, 4, 1))
	require.True(t, ok)
	assert.Nil(t, first.Start, "first year is open at the start")
	assert.True(t, first.Contains(date(2020, 1, 1)))
	assert.True(t, first.Contains(date(2023, 4, 1)), "marker date itself included")
	assert.False(t, first.Contains(date(2023, 4, 2)))

	second, ok := PeriodFor(records, date(2024, 4, 1))
	require.True(t, ok)
	require.NotNil(t, second.Start)
	assert.False(t, second.Contains(date(2023, 4, 1)), "previous marker excluded")
	assert.True(t, second.Contains(date(2023, 4, 2)))
	assert.True(t, second.Contains(date(2024, 4, 1)))

	_, ok = PeriodFor(records, date(2025, 4, 1))
	assert.False(t, ok)
}

func TestRecipientSummary(t *testing.T) {
	total, count := RecipientSummary(fixtureEntries(), "Local Mosque", nil)
	assert.True(t, total.Equal(dec("180.99")))
	assert.Equal(t, 2, count)

	total, count = RecipientSummary(fixtureEntries(), "", nil)
	assert.True(t, total.Equal(dec("271.99")))
	assert.Equal(t, 4, count)

	total, count = RecipientSummary(fixtureEntries(), "Nobody", nil)
	assert.True(t, total.IsZero())
	assert.Zero(t, count)
}

func TestServiceFees(t *testing.T) {
	summaries := ServiceFees(fixtureEntries(), []string{"Remitly", "Wise", "Bank Transfer", "Cash", "Zelle"})
	require.Len(t, summaries, 5)

	byName := make(map[string]ServiceSummary)
	for _, s := range summaries {
		byName[s.Service] = s
	}

	assert.True(t, byName["Wise"].Fees.Equal(dec("3")))
	assert.True(t, byName["Wise"].Amount.Equal(dec("140")))
	assert.Equal(t, 2, byName["Wise"].Count)
	assert.True(t, byName["Remitly"].Fees.Equal(dec("3.99")))
	assert.Equal(t, 1, byName["Remitly"].Count)
	assert.Zero(t, byName["Zelle"].Count)
}

func TestServiceFeesIgnoresBlankService(t *testing.T) {
	entries := []model.Entry{
		{Date: date(2024, 1, 1), Type: "Zakat", Recipient: "Local Mosque", Amount: dec("10"), Fees: dec("1")},
	}
	summaries := ServiceFees(entries, []string{"Wise"})
	assert.Zero(t, summaries[0].Count)
	assert.True(t, summaries[0].Fees.IsZero())
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(fixtureRecords(), fixtureEntries(), testTypes, "Zakat")

	assert.True(t, d.TotalOwed.Equal(dec("250")))
	assert.True(t, totalFor(d.PaidByType, "Zakat").Equal(dec("180.99")))
	assert.True(t, d.Outstanding.Equal(dec("69.01")))
}

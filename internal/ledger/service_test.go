package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir(), newMockVocab())
}

func TestAddAndReadBack(t *testing.T) {
	svc := newTestService(t)

	entryID, err := svc.Add(AddParams{
		Date:      date(2024, 3, 1),
		Type:      "Zakat",
		Service:   "Wise",
		Recipient: "Local Mosque",
		Notes:     "annual zakat",
		Amount:    dec("175.00"),
		Fees:      dec("2.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-001", entryID)

	entries, err := svc.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-001", entries[0].ID)
	assert.Equal(t, "Zakat", entries[0].Type)
	assert.True(t, entries[0].TotalPaid().Equal(dec("177.50")))
}

func TestAddSequencesPerYear(t *testing.T) {
	svc := newTestService(t)

	id1, err := svc.Add(AddParams{Date: date(2024, 3, 1), Type: "Zakat", Recipient: "Local Mosque", Amount: dec("10")})
	require.NoError(t, err)
	id2, err := svc.Add(AddParams{Date: date(2024, 5, 9), Type: "Sadaqah", Recipient: "Family Member", Amount: dec("20")})
	require.NoError(t, err)
	id3, err := svc.Add(AddParams{Date: date(2025, 1, 2), Type: "Zakat", Recipient: "Local Mosque", Amount: dec("30")})
	require.NoError(t, err)

	assert.Equal(t, "2024-001", id1)
	assert.Equal(t, "2024-002", id2)
	assert.Equal(t, "2025-001", id3)
}

func TestAddRejectsInvalid(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(AddParams{
		Date:      date(2024, 3, 1),
		Type:      "Interest",
		Recipient: "Local Mosque",
		Amount:    dec("-5"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// A rejected entry mutates nothing.
	entries, err := svc.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAllMissingFile(t *testing.T) {
	svc := newTestService(t)
	entries, err := svc.ReadAll()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRunningTotals(t *testing.T) {
	entries := []model.Entry{
		{ID: "2024-001", Date: date(2024, 1, 5), Amount: dec("100"), Fees: dec("1.50")},
		{ID: "2024-002", Date: date(2024, 2, 5), Amount: dec("50"), Fees: decimal.Zero},
		// Backdated correction appended later stays last in stored order.
		{ID: "2024-003", Date: date(2024, 1, 2), Amount: dec("25"), Fees: dec("0.50")},
	}

	totals := RunningTotals(entries)
	require.Len(t, totals, 3)
	assert.True(t, totals[0].Equal(dec("101.50")))
	assert.True(t, totals[1].Equal(dec("151.50")))
	assert.True(t, totals[2].Equal(dec("177.00")))
}

func TestRunningTotalsMonotonic(t *testing.T) {
	entries := []model.Entry{
		{Amount: dec("0"), Fees: dec("0")},
		{Amount: dec("10"), Fees: dec("0")},
		{Amount: dec("0"), Fees: dec("2")},
		{Amount: dec("3.33"), Fees: dec("0.01")},
	}
	totals := RunningTotals(entries)
	for i := 1; i < len(totals); i++ {
		assert.True(t, totals[i].GreaterThanOrEqual(totals[i-1]),
			"running total must never decrease: %s -> %s", totals[i-1], totals[i])
	}
}

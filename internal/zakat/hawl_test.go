package zakat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

func recordsOn(dates ...time.Time) []model.ZakatYearRecord {
	records := make([]model.ZakatYearRecord, len(dates))
	for i, d := range dates {
		records[i] = model.ZakatYearRecord{Date: d}
	}
	return records
}

func TestHawlDueSoon(t *testing.T) {
	// 2024-04-01 + 354 days = 2025-03-21.
	info, ok := Hawl(recordsOn(date(2024, 4, 1)), date(2025, 3, 20), 30)
	require.True(t, ok)
	assert.True(t, info.NextDue.Equal(date(2025, 3, 21)))
	assert.Equal(t, 1, info.DaysUntil)
	assert.Equal(t, model.HawlDueSoon, info.State)
}

func TestHawlDueNow(t *testing.T) {
	info, ok := Hawl(recordsOn(date(2024, 4, 1)), date(2025, 3, 21), 30)
	require.True(t, ok)
	assert.Equal(t, 0, info.DaysUntil)
	assert.Equal(t, model.HawlDueNow, info.State)

	info, _ = Hawl(recordsOn(date(2024, 4, 1)), date(2025, 6, 1), 30)
	assert.Negative(t, info.DaysUntil)
	assert.Equal(t, model.HawlDueNow, info.State)
}

func TestHawlInProgress(t *testing.T) {
	info, ok := Hawl(recordsOn(date(2024, 4, 1)), date(2024, 5, 1), 30)
	require.True(t, ok)
	assert.Equal(t, model.HawlInProgress, info.State)
}

func TestHawlDueSoonWindowBoundary(t *testing.T) {
	// Exactly dueSoonDays out still counts as due-soon; one more day does not.
	info, _ := Hawl(recordsOn(date(2024, 4, 1)), date(2025, 2, 19), 30)
	assert.Equal(t, 30, info.DaysUntil)
	assert.Equal(t, model.HawlDueSoon, info.State)

	info, _ = Hawl(recordsOn(date(2024, 4, 1)), date(2025, 2, 18), 30)
	assert.Equal(t, 31, info.DaysUntil)
	assert.Equal(t, model.HawlInProgress, info.State)
}

func TestHawlUsesLatestByDate(t *testing.T) {
	records := recordsOn(date(2024, 4, 1), date(2022, 4, 1), date(2023, 4, 1))
	info, ok := Hawl(records, date(2024, 5, 1), 30)
	require.True(t, ok)
	assert.True(t, info.LastDate.Equal(date(2024, 4, 1)), "latest by date, not by position")
}

func TestHawlNoRecords(t *testing.T) {
	_, ok := Hawl(nil, date(2024, 5, 1), 30)
	assert.False(t, ok)
}

func TestNisab(t *testing.T) {
	assertEq(t, "5463", Nisab(dec("2000"), dec("2.7315")), "gold nisab at $2000/oz")
	assertEq(t, "8194.5", Nisab(dec("3000"), dec("2.7315")), "gold nisab at $3000/oz")
}

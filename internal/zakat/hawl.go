package zakat

import (
	"time"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// HawlDays approximates one lunar year. No calendar-month arithmetic: the
// next due date is always a fixed day offset from the last marker.
const HawlDays = 354

// HawlInfo is the live hawl countdown, recomputed on every read.
type HawlInfo struct {
	LastDate  time.Time
	NextDue   time.Time
	DaysUntil int
	State     model.HawlState
}

// Hawl computes the countdown from the most recent record (latest by date,
// not by position) to the next zakat anniversary. Returns false when there
// are no records yet.
func Hawl(records []model.ZakatYearRecord, today time.Time, dueSoonDays int) (HawlInfo, bool) {
	if len(records) == 0 {
		return HawlInfo{}, false
	}

	last := records[0].Date
	for _, r := range records[1:] {
		if r.Date.After(last) {
			last = r.Date
		}
	}

	next := last.AddDate(0, 0, HawlDays)
	days := daysBetween(today, next)

	state := model.HawlInProgress
	switch {
	case days <= 0:
		state = model.HawlDueNow
	case days <= dueSoonDays:
		state = model.HawlDueSoon
	}

	return HawlInfo{
		LastDate:  last,
		NextDue:   next,
		DaysUntil: days,
		State:     state,
	}, true
}

func daysBetween(from, to time.Time) int {
	from = midnightUTC(from)
	to = midnightUTC(to)
	return int(to.Sub(from).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Package recurrence generates the occurrence dates for repeating bookings.
// Two modes exist and are intentionally kept separate: the weekday-anchored
// mode used by the quick "repeat every <weekday>" selector, and the periodic
// mode used by the booking wizard, which supports exception dates.
package recurrence

import (
	"time"

	"github.com/escanor68/turnosya-backend/pkg/constant"
)

type Frequency string

const (
	None     Frequency = "none"
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

const (
	// MinSelectorCount is the lower clamp bound for the weekday selector.
	MinSelectorCount = 1
	// MinWizardCount is the lower clamp bound for the booking wizard.
	MinWizardCount = 2
	// MaxCount is the upper clamp bound for both modes.
	MaxCount = 12

	daysPerWeek = 7
)

// ParseFrequency maps a request string onto a Frequency, defaulting to None.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case Weekly, Biweekly, Monthly:
		return Frequency(s)
	default:
		return None
	}
}

// ClampCount clamps a requested occurrence count into [minCount, MaxCount].
// Out-of-range values are clamped, never rejected.
func ClampCount(n, minCount int) int {
	if n < minCount {
		return minCount
	}

	if n > MaxCount {
		return MaxCount
	}

	return n
}

// DateKey formats a time as the calendar-date key used for exception lookups.
func DateKey(t time.Time) string {
	return t.Format(constant.DateFormat)
}

// AnchorWeekday emits count dates spaced exactly 7 days apart, anchored on
// the first day at or after start whose weekday matches weekday. When start
// already falls on the target weekday it is used as-is. Out-of-range weekday
// values are normalized into Sunday..Saturday.
func AnchorWeekday(start time.Time, weekday time.Weekday, count int) []time.Time {
	count = ClampCount(count, MinSelectorCount)
	weekday = (weekday%daysPerWeek + daysPerWeek) % daysPerWeek

	anchor := start
	for anchor.Weekday() != weekday {
		anchor = anchor.AddDate(0, 0, 1)
	}

	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, anchor.AddDate(0, 0, i*daysPerWeek))
	}

	return dates
}

// Periodic emits up to count dates starting exactly at start, stepped by the
// given frequency: 7 days (weekly), 14 days (biweekly) or one calendar month
// (monthly). Candidates whose calendar date is listed in exceptions are
// skipped, not replaced, so the result is shorter than count when exceptions
// fall inside the range.
func Periodic(start time.Time, freq Frequency, count int, exceptions map[string]struct{}) []time.Time {
	if freq == None {
		return []time.Time{start}
	}

	count = ClampCount(count, MinWizardCount)

	dates := make([]time.Time, 0, count)

	for i := 0; i < count; i++ {
		var candidate time.Time

		switch freq {
		case Weekly:
			candidate = start.AddDate(0, 0, i*daysPerWeek)
		case Biweekly:
			candidate = start.AddDate(0, 0, i*daysPerWeek*2)
		case Monthly:
			candidate = start.AddDate(0, i, 0)
		case None:
			candidate = start
		}

		if _, skip := exceptions[DateKey(candidate)]; skip {
			continue
		}

		dates = append(dates, candidate)
	}

	return dates
}

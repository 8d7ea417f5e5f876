package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAnchorWeekday(t *testing.T) {
	t.Run("success: start already on target weekday is used as-is", func(t *testing.T) {
		start := date(2025, time.March, 3) // a Monday

		dates := AnchorWeekday(start, time.Monday, 4)

		assert.Len(t, dates, 4)
		assert.Equal(t, start, dates[0])
	})

	t.Run("success: start advances day by day to the target weekday", func(t *testing.T) {
		start := date(2025, time.March, 3) // Monday

		dates := AnchorWeekday(start, time.Thursday, 2)

		assert.Equal(t, date(2025, time.March, 6), dates[0])
		assert.Equal(t, date(2025, time.March, 13), dates[1])
	})

	t.Run("success: consecutive occurrences are exactly 7 days apart", func(t *testing.T) {
		dates := AnchorWeekday(date(2025, time.June, 15), time.Saturday, 12)

		for i := 1; i < len(dates); i++ {
			assert.Equal(t, 7*24*time.Hour, dates[i].Sub(dates[i-1]))
			assert.Equal(t, time.Saturday, dates[i].Weekday())
		}
	})

	t.Run("success: out-of-range weekday is normalized", func(t *testing.T) {
		start := date(2025, time.March, 3) // Monday

		dates := AnchorWeekday(start, time.Weekday(9), 2) // 9 mod 7 = Tuesday

		assert.Len(t, dates, 2)
		assert.Equal(t, date(2025, time.March, 4), dates[0])
		assert.Equal(t, time.Tuesday, dates[0].Weekday())

		dates = AnchorWeekday(start, time.Weekday(-1), 1) // -1 wraps to Saturday

		assert.Equal(t, time.Saturday, dates[0].Weekday())
	})

	t.Run("success: count is clamped into [1, 12]", func(t *testing.T) {
		assert.Len(t, AnchorWeekday(date(2025, time.March, 3), time.Monday, 0), 1)
		assert.Len(t, AnchorWeekday(date(2025, time.March, 3), time.Monday, -5), 1)
		assert.Len(t, AnchorWeekday(date(2025, time.March, 3), time.Monday, 50), 12)
	})
}

func TestPeriodic(t *testing.T) {
	t.Run("success: weekly candidates step 7 days from the start date", func(t *testing.T) {
		start := date(2025, time.March, 5)

		dates := Periodic(start, Weekly, 4, nil)

		assert.Len(t, dates, 4)
		assert.Equal(t, start, dates[0])
		assert.Equal(t, date(2025, time.March, 12), dates[1])
		assert.Equal(t, date(2025, time.March, 26), dates[3])
	})

	t.Run("success: biweekly candidates step 14 days", func(t *testing.T) {
		dates := Periodic(date(2025, time.March, 5), Biweekly, 3, nil)

		assert.Equal(t, date(2025, time.March, 19), dates[1])
		assert.Equal(t, date(2025, time.April, 2), dates[2])
	})

	t.Run("success: monthly uses calendar month increments", func(t *testing.T) {
		dates := Periodic(date(2025, time.January, 15), Monthly, 3, nil)

		assert.Equal(t, date(2025, time.February, 15), dates[1])
		assert.Equal(t, date(2025, time.March, 15), dates[2])
	})

	t.Run("success: an exception skips the candidate without replacement", func(t *testing.T) {
		start := date(2025, time.March, 5)
		exceptions := map[string]struct{}{
			"2025-03-12": {}, // second weekly candidate
		}

		dates := Periodic(start, Weekly, 4, exceptions)

		assert.Len(t, dates, 3)
		assert.Equal(t, start, dates[0])
		assert.Equal(t, date(2025, time.March, 19), dates[1])
	})

	t.Run("success: count clamped into [2, 12] when no exceptions intersect", func(t *testing.T) {
		assert.Len(t, Periodic(date(2025, time.March, 5), Weekly, 1, nil), 2)
		assert.Len(t, Periodic(date(2025, time.March, 5), Weekly, 100, nil), 12)
	})

	t.Run("success: no recurrence yields the start date only", func(t *testing.T) {
		start := date(2025, time.March, 5)

		dates := Periodic(start, None, 8, nil)

		assert.Equal(t, []time.Time{start}, dates)
	})
}

func TestParseFrequency(t *testing.T) {
	assert.Equal(t, Weekly, ParseFrequency("weekly"))
	assert.Equal(t, Biweekly, ParseFrequency("biweekly"))
	assert.Equal(t, Monthly, ParseFrequency("monthly"))
	assert.Equal(t, None, ParseFrequency("none"))
	assert.Equal(t, None, ParseFrequency("daily"))
	assert.Equal(t, None, ParseFrequency(""))
}

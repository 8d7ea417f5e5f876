package helper

import (
	"math"
	"strconv"
	"time"
)

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// CalculateEndTime adds the field slot duration (minutes) to the start time.
func CalculateEndTime(startTime time.Time, durationMinutes int) time.Time {
	return startTime.Add(time.Duration(durationMinutes) * time.Minute)
}

// FormatMoney renders an amount for display, rounded to the nearest whole unit.
// Intermediate amounts keep their fractional part; only presentation rounds.
func FormatMoney(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount)), 10)
}

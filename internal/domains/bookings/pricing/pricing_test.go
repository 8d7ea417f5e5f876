package pricing

import (
	"testing"

	"github.com/escanor68/turnosya-backend/internal/domains/bookings/recurrence"
	"github.com/stretchr/testify/assert"
)

func testCatalog() []Addon {
	return []Addon{
		{ID: "referee", Name: "Arbitro", Price: 3000},
		{ID: "grill", Name: "Parrilla", Price: 1500},
		{ID: "vests", Name: "Pecheras", Price: 800},
	}
}

func TestQuote(t *testing.T) {
	t.Run("success: no recurrence and no services equals the base price", func(t *testing.T) {
		b := Quote(12000, OptionFor(recurrence.None), 4, nil, testCatalog())

		assert.InDelta(t, 12000, b.Total, 1e-9)
		assert.Equal(t, 1, b.Multiplier)
	})

	t.Run("success: weekly discount over four occurrences with a referee", func(t *testing.T) {
		b := Quote(8500, OptionFor(recurrence.Weekly), 4, []string{"referee"}, testCatalog())

		assert.InDelta(t, 32300, b.RecurrenceSubtotal, 1e-9) // 8500 * 0.95 * 4
		assert.InDelta(t, 3000, b.ServicesTotal, 1e-9)
		assert.InDelta(t, 35300, b.Total, 1e-9)
		assert.Equal(t, int64(35300), b.DisplayTotal())
	})

	t.Run("success: unknown service ids contribute zero", func(t *testing.T) {
		b := Quote(8500, OptionFor(recurrence.None), 1, []string{"sauna", "referee"}, testCatalog())

		assert.InDelta(t, 3000, b.ServicesTotal, 1e-9)
	})

	t.Run("success: services are purely additive", func(t *testing.T) {
		withServices := Quote(9000, OptionFor(recurrence.Biweekly), 6, []string{"grill", "vests"}, testCatalog())
		withoutServices := Quote(9000, OptionFor(recurrence.Biweekly), 6, nil, testCatalog())

		assert.InDelta(t, withoutServices.Total+1500+800, withServices.Total, 1e-9)
	})

	t.Run("success: a larger discount strictly lowers the subtotal", func(t *testing.T) {
		prev := Quote(8500, Option{ID: recurrence.Weekly, DiscountPercent: 0}, 4, nil, nil).RecurrenceSubtotal

		for _, percent := range []int{1, 5, 10, 25, 50, 99} {
			cur := Quote(8500, Option{ID: recurrence.Weekly, DiscountPercent: percent}, 4, nil, nil).RecurrenceSubtotal

			assert.Less(t, cur, prev)

			prev = cur
		}
	})

	t.Run("success: multiplier is the count only when recurring", func(t *testing.T) {
		recurring := Quote(1000, OptionFor(recurrence.Monthly), 3, nil, nil)
		single := Quote(1000, OptionFor(recurrence.None), 3, nil, nil)

		assert.Equal(t, 3, recurring.Multiplier)
		assert.Equal(t, 1, single.Multiplier)
	})
}

func TestOptionFor(t *testing.T) {
	assert.Equal(t, 0, OptionFor(recurrence.None).DiscountPercent)
	assert.Equal(t, 5, OptionFor(recurrence.Weekly).DiscountPercent)
	assert.Equal(t, 10, OptionFor(recurrence.Biweekly).DiscountPercent)
	assert.Equal(t, 15, OptionFor(recurrence.Monthly).DiscountPercent)

	// unknown frequencies fall back to the no-recurrence option
	assert.Equal(t, 0, OptionFor(recurrence.Frequency("daily")).DiscountPercent)
}

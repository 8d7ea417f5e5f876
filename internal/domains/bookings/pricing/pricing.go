// Package pricing computes booking totals: a per-slot price discounted by
// the recurrence option, multiplied over the occurrences, plus the selected
// additional services. Amounts stay as unrounded floats; rounding happens
// only at the display boundary.
package pricing

import (
	"math"

	"github.com/escanor68/turnosya-backend/internal/domains/bookings/recurrence"
)

const percentBase = 100

// Option is an entry of the recurrence discount catalog.
type Option struct {
	ID              recurrence.Frequency `json:"id"`
	Name            string               `json:"name"`
	DiscountPercent int                  `json:"discount_percent"`
}

// Options returns the static recurrence discount catalog.
func Options() []Option {
	return []Option{
		{ID: recurrence.None, Name: "Sin recurrencia", DiscountPercent: 0},
		{ID: recurrence.Weekly, Name: "Semanal", DiscountPercent: 5},
		{ID: recurrence.Biweekly, Name: "Quincenal", DiscountPercent: 10},
		{ID: recurrence.Monthly, Name: "Mensual", DiscountPercent: 15},
	}
}

// OptionFor looks up the catalog entry for a frequency, falling back to the
// no-recurrence option.
func OptionFor(freq recurrence.Frequency) Option {
	for _, opt := range Options() {
		if opt.ID == freq {
			return opt
		}
	}

	return Options()[0]
}

// Addon is an additional service as seen by the calculator.
type Addon struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Breakdown carries the intermediate and final amounts of a quote.
type Breakdown struct {
	BasePrice          float64 `json:"base_price"`
	DiscountPercent    int     `json:"discount_percent"`
	UnitPrice          float64 `json:"unit_price"`
	Multiplier         int     `json:"multiplier"`
	RecurrenceSubtotal float64 `json:"recurrence_subtotal"`
	ServicesTotal      float64 `json:"services_total"`
	Total              float64 `json:"total"`
}

// DisplayTotal rounds the total to whole currency units for presentation.
// Internal accumulation stays unrounded.
func (b Breakdown) DisplayTotal() int64 {
	return int64(math.Round(b.Total))
}

// Quote computes the total charge for a booking draft.
//
// The discounted unit price is basePrice reduced by the option's discount
// percentage. The multiplier is 1 when there is no recurrence, otherwise the
// occurrence count. Selected addon ids with no catalog match contribute 0.
func Quote(basePrice float64, opt Option, count int, addonIDs []string, catalog []Addon) Breakdown {
	discount := float64(opt.DiscountPercent) / percentBase
	unitPrice := basePrice * (1 - discount)

	multiplier := count
	if opt.ID == recurrence.None || multiplier < 1 {
		multiplier = 1
	}

	subtotal := unitPrice * float64(multiplier)

	var servicesTotal float64

	for _, id := range addonIDs {
		for _, addon := range catalog {
			if addon.ID == id {
				servicesTotal += addon.Price

				break
			}
		}
	}

	return Breakdown{
		BasePrice:          basePrice,
		DiscountPercent:    opt.DiscountPercent,
		UnitPrice:          unitPrice,
		Multiplier:         multiplier,
		RecurrenceSubtotal: subtotal,
		ServicesTotal:      servicesTotal,
		Total:              subtotal + servicesTotal,
	}
}

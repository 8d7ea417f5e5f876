package dto

import (
	"time"

	paymentDto "github.com/escanor68/turnosya-backend/internal/domains/payments/dto"

	"github.com/escanor68/turnosya-backend/internal/domains/bookings/pricing"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/helper"
)

type BookingResponse struct {
	ID              string   `json:"id"`
	GroupID         string   `json:"group_id"`
	FieldID         string   `json:"field_id"`
	FieldName       string   `json:"field_name,omitempty"`
	BookingDate     string   `json:"booking_date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Players         int      `json:"players"`
	Recurrence      string   `json:"recurrence"`
	RecurrenceCount int      `json:"recurrence_count"`
	TotalPrice      float64  `json:"total_price"`
	AddonIDs        []string `json:"addon_ids,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	startTime, _ := helper.PgTimeToString(model.StartTime)
	endTime, _ := helper.PgTimeToString(model.EndTime)

	return BookingResponse{
		ID:              model.ID.String(),
		GroupID:         model.GroupID.String(),
		FieldID:         model.FieldID.String(),
		BookingDate:     model.BookingDate.Time.Format(constant.DateFormat),
		StartTime:       startTime,
		EndTime:         endTime,
		Players:         int(model.Players),
		Recurrence:      model.Recurrence,
		RecurrenceCount: int(model.RecurrenceCount),
		TotalPrice:      helper.Float64FromPg(model.TotalPrice),
		AddonIDs:        model.AddonIds,
		Notes:           model.Notes.String,
		Status:          model.Status,
		CreatedAt:       model.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:       model.UpdatedAt.Time.Format(constant.FullDateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (b *GetBookingsResponse) FromModel(bookings []repository.Booking, totalItems, limit int) {
	b.TotalItems = totalItems
	b.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(bookings) == 0 {
		b.Bookings = []BookingResponse{}

		return
	}

	b.Bookings = make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		b.Bookings[i] = BookingResponse{}.FromModel(booking)
	}
}

// EnrichWithFieldNames adds field names to the booking responses
func (b *GetBookingsResponse) EnrichWithFieldNames(fieldNames map[string]string) {
	for i := range b.Bookings {
		if name, exists := fieldNames[b.Bookings[i].FieldID]; exists {
			b.Bookings[i].FieldName = name
		}
	}
}

type RecurrenceOptionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DiscountPercent int    `json:"discount_percent"`
}

type GetRecurrenceOptionsResponse struct {
	Options []RecurrenceOptionResponse `json:"options"`
}

func (r *GetRecurrenceOptionsResponse) FromCatalog(options []pricing.Option) {
	r.Options = make([]RecurrenceOptionResponse, len(options))

	for i, opt := range options {
		r.Options[i] = RecurrenceOptionResponse{
			ID:              string(opt.ID),
			Name:            opt.Name,
			DiscountPercent: opt.DiscountPercent,
		}
	}
}

type QuoteResponse struct {
	Occurrences        []string `json:"occurrences"`
	BasePrice          float64  `json:"base_price"`
	DiscountPercent    int      `json:"discount_percent"`
	UnitPrice          float64  `json:"unit_price"`
	Multiplier         int      `json:"multiplier"`
	RecurrenceSubtotal float64  `json:"recurrence_subtotal"`
	ServicesTotal      float64  `json:"services_total"`
	Total              float64  `json:"total"`
	DisplayTotal       int64    `json:"display_total"`
}

func (q *QuoteResponse) FromBreakdown(b pricing.Breakdown, occurrences []time.Time) {
	q.Occurrences = make([]string, len(occurrences))
	for i, occ := range occurrences {
		q.Occurrences[i] = occ.Format(constant.DateFormat)
	}

	q.BasePrice = b.BasePrice
	q.DiscountPercent = b.DiscountPercent
	q.UnitPrice = b.UnitPrice
	q.Multiplier = b.Multiplier
	q.RecurrenceSubtotal = b.RecurrenceSubtotal
	q.ServicesTotal = b.ServicesTotal
	q.Total = b.Total
	q.DisplayTotal = b.DisplayTotal()
}

type CreateBookingResponse struct {
	GroupID    string                           `json:"group_id"`
	BookingIDs []string                         `json:"booking_ids"`
	Quote      QuoteResponse                    `json:"quote"`
	Payment    paymentDto.CreatePaymentResponse `json:"payment"`
}

type BookedSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type GetBookedSlotsResponse struct {
	FieldID     string       `json:"field_id"`
	BookedSlots []BookedSlot `json:"booked_slots"`
	TotalItems  int          `json:"total_items"`
}

func (b *GetBookedSlotsResponse) FromModel(bookedSlots []repository.GetBookedTimeSlotsRow, fieldID string) {
	b.FieldID = fieldID

	if len(bookedSlots) == 0 {
		b.BookedSlots = []BookedSlot{}
		b.TotalItems = 0

		return
	}

	b.BookedSlots = make([]BookedSlot, len(bookedSlots))
	b.TotalItems = len(bookedSlots)

	for i, slot := range bookedSlots {
		startTime, _ := helper.PgTimeToString(slot.StartTime)
		endTime, _ := helper.PgTimeToString(slot.EndTime)

		b.BookedSlots[i] = BookedSlot{
			StartTime: startTime,
			EndTime:   endTime,
		}
	}
}

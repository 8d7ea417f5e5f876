package dto

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID              uuid.UUID `json:"field_id" validate:"required,uuid"`
	Date                 string    `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime            string    `json:"start_time" validate:"required,datetime=15:04" example:"15:04"`
	Players              int       `json:"players" validate:"omitempty,min=1"`
	Recurrence           string    `json:"recurrence" validate:"omitempty,oneof=none weekly biweekly monthly"`
	RecurrenceCount      int       `json:"recurrence_count" validate:"omitempty,min=1,max=12"`
	RecurrenceExceptions []string  `json:"recurrence_exceptions" validate:"omitempty,dive,datetime=2006-01-02"`
	AddonIDs             []string  `json:"addon_ids" validate:"omitempty,dive,uuid"`
	Notes                string    `json:"notes" validate:"omitempty,max=500"`
	PaymentMethod        string    `json:"payment_method" validate:"required,oneof=mercadopago transfer"`
}

type QuoteBookingRequest struct {
	FieldID              uuid.UUID `json:"field_id" validate:"required,uuid"`
	Date                 string    `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	Recurrence           string    `json:"recurrence" validate:"omitempty,oneof=none weekly biweekly monthly"`
	RecurrenceCount      int       `json:"recurrence_count" validate:"omitempty,min=1,max=12"`
	RecurrenceExceptions []string  `json:"recurrence_exceptions" validate:"omitempty,dive,datetime=2006-01-02"`
	AddonIDs             []string  `json:"addon_ids" validate:"omitempty,dive,uuid"`
}

type GetBookedSlotsRequest struct {
	FieldID string `json:"field_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
}

type CancelUserBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid" swaggerignore:"true"`
	UserID    string `json:"user_id" validate:"required,uuid" swaggerignore:"true"`
}

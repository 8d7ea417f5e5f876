package dto

import (
	bookingDto "github.com/escanor68/turnosya-backend/internal/domains/bookings/dto"
)

// DraftResponse is a draft plus the field errors of its current step, if any.
// A blocked NEXT or SUBMIT returns the unchanged draft with Errors populated.
type DraftResponse struct {
	Draft

	Errors map[string]string `json:"errors,omitempty"`
}

type SubmitWizardResponse struct {
	Booking bookingDto.CreateBookingResponse `json:"booking"`
}

package dto

import (
	"github.com/google/uuid"
)

type StartWizardRequest struct {
	FieldID uuid.UUID `json:"field_id" validate:"required,uuid"`
}

// UpdateDraftRequest carries a partial draft update. Nil fields are left
// untouched so the frontend can patch one step at a time.
type UpdateDraftRequest struct {
	Date                 *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time                 *string  `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Players              *int     `json:"players,omitempty" validate:"omitempty,min=1"`
	ContactName          *string  `json:"contact_name,omitempty" validate:"omitempty,max=120"`
	ContactPhone         *string  `json:"contact_phone,omitempty" validate:"omitempty,max=32"`
	ContactEmail         *string  `json:"contact_email,omitempty" validate:"omitempty,max=254"`
	PaymentMethod        *string  `json:"payment_method,omitempty" validate:"omitempty,oneof=mercadopago transfer"`
	TermsAccepted        *bool    `json:"terms_accepted,omitempty"`
	Recurrence           *string  `json:"recurrence,omitempty" validate:"omitempty,oneof=none weekly biweekly monthly"`
	RecurrenceWeekday    *int     `json:"recurrence_weekday,omitempty" validate:"omitempty,min=0,max=6"`
	RecurrenceCount      *int     `json:"recurrence_count,omitempty" validate:"omitempty,min=1,max=12"`
	RecurrenceExceptions []string `json:"recurrence_exceptions,omitempty" validate:"omitempty,dive,datetime=2006-01-02"`
	AddonIDs             []string `json:"addon_ids,omitempty" validate:"omitempty,dive,uuid"`
	Notes                *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

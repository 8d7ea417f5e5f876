package dto

// Wizard steps. A draft moves forward only when its current step validates;
// moving back never loses data.
const (
	StepSchedule = 1
	StepContact  = 2
	StepConfirm  = 3
)

// Draft is the server-side state of a booking wizard session. It lives in
// Redis until it is submitted or expires.
type Draft struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	FieldID              string   `json:"field_id"`
	Step                 int      `json:"step"`
	Date                 string   `json:"date"`
	Time                 string   `json:"time"`
	Players              int      `json:"players"`
	ContactName          string   `json:"contact_name"`
	ContactPhone         string   `json:"contact_phone"`
	ContactEmail         string   `json:"contact_email"`
	PaymentMethod        string   `json:"payment_method"`
	TermsAccepted        bool     `json:"terms_accepted"`
	Recurrence           string   `json:"recurrence"`
	RecurrenceWeekday    *int     `json:"recurrence_weekday,omitempty"`
	RecurrenceCount      int      `json:"recurrence_count"`
	RecurrenceExceptions []string `json:"recurrence_exceptions,omitempty"`
	AddonIDs             []string `json:"addon_ids,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Submitting           bool     `json:"submitting"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

// Apply merges the non-nil fields of an update request into the draft.
func (d *Draft) Apply(req UpdateDraftRequest) {
	if req.Date != nil {
		d.Date = *req.Date
	}

	if req.Time != nil {
		d.Time = *req.Time
	}

	if req.Players != nil {
		d.Players = *req.Players
	}

	if req.ContactName != nil {
		d.ContactName = *req.ContactName
	}

	if req.ContactPhone != nil {
		d.ContactPhone = *req.ContactPhone
	}

	if req.ContactEmail != nil {
		d.ContactEmail = *req.ContactEmail
	}

	if req.PaymentMethod != nil {
		d.PaymentMethod = *req.PaymentMethod
	}

	if req.TermsAccepted != nil {
		d.TermsAccepted = *req.TermsAccepted
	}

	if req.Recurrence != nil {
		d.Recurrence = *req.Recurrence
	}

	if req.RecurrenceWeekday != nil {
		d.RecurrenceWeekday = req.RecurrenceWeekday
	}

	if req.RecurrenceCount != nil {
		d.RecurrenceCount = *req.RecurrenceCount
	}

	if req.RecurrenceExceptions != nil {
		d.RecurrenceExceptions = req.RecurrenceExceptions
	}

	if req.AddonIDs != nil {
		d.AddonIDs = req.AddonIDs
	}

	if req.Notes != nil {
		d.Notes = *req.Notes
	}
}

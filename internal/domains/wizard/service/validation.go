package service

import (
	"regexp"
	"strings"

	"github.com/escanor68/turnosya-backend/internal/domains/wizard/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPhoneLength = 8

// ValidateStep checks the fields a wizard step collects. It returns a map of
// field name to message, nil when the step is complete.
func ValidateStep(step int, d dto.Draft) map[string]string {
	errs := make(map[string]string)

	switch step {
	case dto.StepSchedule:
		if strings.TrimSpace(d.Date) == "" {
			errs["date"] = "date is required"
		}

		if strings.TrimSpace(d.Time) == "" {
			errs["time"] = "time is required"
		}
	case dto.StepContact:
		if strings.TrimSpace(d.ContactName) == "" {
			errs["contact_name"] = "name is required"
		}

		phone := strings.TrimSpace(d.ContactPhone)
		if phone == "" {
			errs["contact_phone"] = "phone is required"
		} else if len(phone) < minPhoneLength {
			errs["contact_phone"] = "phone must have at least 8 characters"
		}

		email := strings.TrimSpace(d.ContactEmail)
		if email == "" {
			errs["contact_email"] = "email is required"
		} else if !emailPattern.MatchString(email) {
			errs["contact_email"] = "email is invalid"
		}
	case dto.StepConfirm:
		if d.PaymentMethod == "" {
			errs["payment_method"] = "payment method is required"
		}

		if !d.TermsAccepted {
			errs["terms_accepted"] = "terms must be accepted"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateThrough validates every step up to and including the given one,
// returning the first step's errors found.
func ValidateThrough(step int, d dto.Draft) map[string]string {
	for s := dto.StepSchedule; s <= step; s++ {
		if errs := ValidateStep(s, d); len(errs) > 0 {
			return errs
		}
	}

	return nil
}

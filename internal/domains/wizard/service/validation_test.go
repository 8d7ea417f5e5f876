package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escanor68/turnosya-backend/internal/domains/wizard/dto"
)

func completeDraft() dto.Draft {
	return dto.Draft{
		Date:          "2026-01-05",
		Time:          "19:00",
		ContactName:   "Juan Perez",
		ContactPhone:  "1144556677",
		ContactEmail:  "juan@example.com",
		PaymentMethod: "transfer",
		TermsAccepted: true,
	}
}

func TestValidateStep(t *testing.T) {
	t.Run("schedule: date and time are required", func(t *testing.T) {
		errs := ValidateStep(dto.StepSchedule, dto.Draft{})

		assert.Equal(t, "date is required", errs["date"])
		assert.Equal(t, "time is required", errs["time"])
	})

	t.Run("schedule: whitespace-only values are rejected", func(t *testing.T) {
		errs := ValidateStep(dto.StepSchedule, dto.Draft{Date: "  ", Time: "\t"})

		assert.Len(t, errs, 2)
	})

	t.Run("contact: short phone is rejected", func(t *testing.T) {
		d := completeDraft()
		d.ContactPhone = "1234567"

		errs := ValidateStep(dto.StepContact, d)

		assert.Equal(t, "phone must have at least 8 characters", errs["contact_phone"])
	})

	t.Run("contact: malformed email is rejected", func(t *testing.T) {
		d := completeDraft()
		d.ContactEmail = "not-an-email"

		errs := ValidateStep(dto.StepContact, d)

		assert.Equal(t, "email is invalid", errs["contact_email"])
	})

	t.Run("confirm: terms must be accepted", func(t *testing.T) {
		d := completeDraft()
		d.TermsAccepted = false

		errs := ValidateStep(dto.StepConfirm, d)

		assert.Equal(t, "terms must be accepted", errs["terms_accepted"])
	})

	t.Run("complete draft validates on every step", func(t *testing.T) {
		d := completeDraft()

		assert.Nil(t, ValidateStep(dto.StepSchedule, d))
		assert.Nil(t, ValidateStep(dto.StepContact, d))
		assert.Nil(t, ValidateStep(dto.StepConfirm, d))
	})
}

func TestValidateThrough(t *testing.T) {
	t.Run("returns the earliest incomplete step", func(t *testing.T) {
		d := completeDraft()
		d.Time = ""
		d.ContactName = ""

		errs := ValidateThrough(dto.StepConfirm, d)

		assert.Equal(t, "time is required", errs["time"])
		assert.NotContains(t, errs, "contact_name")
	})

	t.Run("complete draft passes all steps", func(t *testing.T) {
		assert.Nil(t, ValidateThrough(dto.StepConfirm, completeDraft()))
	})
}

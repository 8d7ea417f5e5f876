package mail

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service {
	t.Helper()

	os.Setenv("APP_URL", "http://localhost:3000")
	t.Cleanup(func() { os.Unsetenv("APP_URL") })

	config := Config{
		SMTPHost:     "localhost",
		SMTPPort:     587,
		SMTPUsername: "test@example.com",
		SMTPPassword: "password",
		FromEmail:    "test@example.com",
		FromName:     "TurnosYa",
		TemplatePath: "../../template", // Relative to the test directory
	}

	return New(config).(*service)
}

func TestMailService_Templates(t *testing.T) {
	s := newTestService(t)

	t.Run("templates are loaded correctly", func(t *testing.T) {
		require.NotNil(t, s.passwordResetTemplate)
		require.NotNil(t, s.bookingConfirmationTemplate)
	})

	t.Run("booking confirmation renders booking data", func(t *testing.T) {
		data := BookingConfirmationData{
			CustomerName:  "Juan Perez",
			BookingID:     "c1a2b3d4",
			Status:        "confirmed",
			BookingDate:   "2026-01-05",
			StartTime:     "19:00",
			EndTime:       "20:00",
			TotalAmount:   "$28.500,00",
			PaymentMethod: "transfer",
		}

		body, err := render(s.bookingConfirmationTemplate, data)

		require.NoError(t, err)
		assert.Contains(t, body, "Juan Perez")
		assert.Contains(t, body, "c1a2b3d4")
		assert.Contains(t, body, "2026-01-05")
	})

	t.Run("password reset renders link with token", func(t *testing.T) {
		data := struct {
			Name     string
			ResetURL string
		}{
			Name:     "Juan Perez",
			ResetURL: "http://localhost:3000/reset-password?token=abc123",
		}

		body, err := render(s.passwordResetTemplate, data)

		require.NoError(t, err)
		assert.Contains(t, body, "token=abc123")
	})
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

type ctxKey string

const RequestIDKey ctxKey = "request_id"

// RequestID propagates the caller's request id, or mints one, so log lines
// across a request can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(headerRequestID, requestID)
		c.Locals("request_id", requestID)

		return c.Next()
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/escanor68/turnosya-backend/config"
	_ "github.com/escanor68/turnosya-backend/docs" // Swagger docs
	addonHandler "github.com/escanor68/turnosya-backend/internal/domains/addons/handler"
	authHandler "github.com/escanor68/turnosya-backend/internal/domains/auth/handler"
	bookingHandler "github.com/escanor68/turnosya-backend/internal/domains/bookings/handler"
	fieldHandler "github.com/escanor68/turnosya-backend/internal/domains/fields/handler"
	oauthHandler "github.com/escanor68/turnosya-backend/internal/domains/oauth/handler"
	paymentHandler "github.com/escanor68/turnosya-backend/internal/domains/payments/handler"
	userHandler "github.com/escanor68/turnosya-backend/internal/domains/user/handler"
	wizardHandler "github.com/escanor68/turnosya-backend/internal/domains/wizard/handler"

	"github.com/escanor68/turnosya-backend/internal/delivery/http/middleware"
	"github.com/escanor68/turnosya-backend/pkg/logger"
)

type Handlers struct {
	Auth    *authHandler.Handler
	OAuth   *oauthHandler.Handler
	User    *userHandler.Handler
	Field   *fieldHandler.Handler
	Addon   *addonHandler.Handler
	Booking *bookingHandler.Handler
	Wizard  *wizardHandler.Handler
	Payment *paymentHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title TurnosYa API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.OAuth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Field.RegisterRoutes(apiV1Group)
		handlers.Addon.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Wizard.RegisterRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}

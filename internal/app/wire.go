//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"

	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/delivery/http"

	authHandler "github.com/escanor68/turnosya-backend/internal/domains/auth/handler"
	authService "github.com/escanor68/turnosya-backend/internal/domains/auth/service"

	oauthHandler "github.com/escanor68/turnosya-backend/internal/domains/oauth/handler"
	oauthService "github.com/escanor68/turnosya-backend/internal/domains/oauth/service"

	userHandler "github.com/escanor68/turnosya-backend/internal/domains/user/handler"
	userRepository "github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	userService "github.com/escanor68/turnosya-backend/internal/domains/user/service"

	fieldHandler "github.com/escanor68/turnosya-backend/internal/domains/fields/handler"
	fieldRepository "github.com/escanor68/turnosya-backend/internal/domains/fields/repository"
	fieldService "github.com/escanor68/turnosya-backend/internal/domains/fields/service"

	addonHandler "github.com/escanor68/turnosya-backend/internal/domains/addons/handler"
	addonRepository "github.com/escanor68/turnosya-backend/internal/domains/addons/repository"
	addonService "github.com/escanor68/turnosya-backend/internal/domains/addons/service"

	bookingHandler "github.com/escanor68/turnosya-backend/internal/domains/bookings/handler"
	bookingRepository "github.com/escanor68/turnosya-backend/internal/domains/bookings/repository"
	bookingService "github.com/escanor68/turnosya-backend/internal/domains/bookings/service"

	wizardHandler "github.com/escanor68/turnosya-backend/internal/domains/wizard/handler"
	wizardService "github.com/escanor68/turnosya-backend/internal/domains/wizard/service"

	paymentHandler "github.com/escanor68/turnosya-backend/internal/domains/payments/handler"
	paymentRepository "github.com/escanor68/turnosya-backend/internal/domains/payments/repository"
	paymentService "github.com/escanor68/turnosya-backend/internal/domains/payments/service"

	"github.com/escanor68/turnosya-backend/pkg/httpserver"
	"github.com/escanor68/turnosya-backend/pkg/jwt"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/mail"
	"github.com/escanor68/turnosya-backend/pkg/oauth"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
	"github.com/escanor68/turnosya-backend/pkg/supabase"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
}

func provideUserQuerier() userRepository.Querier {
	return userRepository.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var oauthDomain = wire.NewSet(
	oauthService.New,
	oauthHandler.New,
)

var fieldDomain = wire.NewSet(
	fieldRepository.New,
	fieldService.New,
	fieldHandler.New,
	wire.Bind(new(fieldRepository.Querier), new(*fieldRepository.Queries)),
)

var addonDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
	addonHandler.New,
	wire.Bind(new(addonRepository.Querier), new(*addonRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var wizardDomain = wire.NewSet(
	wizardService.New,
	wizardHandler.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
	paymentHandler.New,
	wire.Bind(new(paymentRepository.Querier), new(*paymentRepository.Queries)),
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	oauthDomain,
	fieldDomain,
	addonDomain,
	bookingDomain,
	wizardDomain,
	paymentDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideGoogleOAuth,
		provideMail,
		provideSupabase,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry), jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry))
	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)
	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideGoogleOAuth(cfg *config.Config) oauth.GoogleProviderIface {
	return oauth.NewGoogleProvider(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.Google.RedirectURL)
}

func provideMail(cfg *config.Config) mail.Service {
	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideSupabase(cfg *config.Config) (*supabase.Client, error) {
	return supabase.NewClient(supabase.Config{
		AccessKeyID:     cfg.Supabase.AccessKeyID,
		SecretAccessKey: cfg.Supabase.SecretAccessKey,
		EndpointURL:     cfg.Supabase.EndpointURL,
		Region:          cfg.Supabase.Region,
		BucketName:      cfg.Supabase.BucketName,
	})
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}

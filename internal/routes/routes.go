package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/volcano-atlas/volcano_api/internal/auth"
	"github.com/volcano-atlas/volcano_api/internal/comments"
	"github.com/volcano-atlas/volcano_api/internal/config"
	"github.com/volcano-atlas/volcano_api/internal/logging"
	"github.com/volcano-atlas/volcano_api/internal/middleware"
	"github.com/volcano-atlas/volcano_api/internal/photos"
	"github.com/volcano-atlas/volcano_api/internal/users"
	"github.com/volcano-atlas/volcano_api/internal/volcanoes"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key, X-Request-ID",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/healthz", http.StatusMovedPermanently)
	})

	// Repositories
	var (
		userRepo    users.Repository
		volcanoRepo volcanoes.Repository
		commentRepo comments.Repository
		photoRepo   photos.Repository
	)
	if d.DB != nil {
		userRepo = users.NewPostgresRepository(d.DB)
		volcanoRepo = volcanoes.NewPostgresRepository(d.DB)
		commentRepo = comments.NewPostgresRepository(d.DB)
		photoRepo = photos.NewPostgresRepository(d.DB)
	} else {
		userRepo = users.NewMemoryRepository()
		volcanoRepo = volcanoes.NewMemoryRepository()
		commentRepo = comments.NewMemoryRepository()
		photoRepo = photos.NewMemoryRepository()
	}
	var countryCache volcanoes.CountryCache
	if d.Cache != nil {
		countryCache = volcanoes.NewRedisCountryCache(d.Cache, d.Cfg.CountriesTTL)
	}

	// Services and handlers
	tokens := auth.NewTokenCodec(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	credentials := users.NewCredentialStore(userRepo)
	authSvc := auth.NewService(credentials, auth.NewHasher(d.Cfg.BcryptCost), tokens)
	volcanoSvc := volcanoes.NewService(volcanoRepo, countryCache, d.Logger)

	RegisterAuthRoutes(app, auth.NewHandler(authSvc, d.Logger),
		middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit, d.Logger))
	RegisterUserRoutes(app, users.NewHandler(users.NewService(userRepo)), gates{
		required: middleware.RequireAuth(tokens),
		subject:  middleware.OptionalAuthForSubject(tokens, credentials, "email", d.Logger),
	})

	optional := middleware.OptionalAuth(tokens)
	RegisterVolcanoRoutes(app, volcanoes.NewHandler(volcanoSvc), optional)
	RegisterCommunityRoutes(app,
		comments.NewHandler(comments.NewService(commentRepo, volcanoSvc)),
		photos.NewHandler(photos.NewService(photoRepo, volcanoSvc)),
		gates{required: middleware.RequireAuth(tokens), optional: optional},
	)

	return nil
}

// gates bundles the authorization middlewares a route group needs.
type gates struct {
	required fiber.Handler
	optional fiber.Handler
	subject  fiber.Handler
}

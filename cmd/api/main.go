package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"portfolio/docs"
	"portfolio/internal/bootstrap"
	"portfolio/internal/cache"
	"portfolio/internal/captcha"
	"portfolio/internal/config"
	"portfolio/internal/database"
	handlers "portfolio/internal/http/handler"
	"portfolio/internal/http/middleware"
	"portfolio/internal/logging"
	"portfolio/internal/mail"
	"portfolio/internal/metrics"
	"portfolio/internal/otel"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/service"
	"portfolio/internal/storage"
	"portfolio/web"
)

// resume uploads are capped at 10 MB by the service; leave room for multipart framing.
const bodyLimit = 12 * 1024 * 1024

// @title Portfolio API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logging.Fatal("failed to initialize tracing", "error", err)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	objStore, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal("failed to initialize object storage", "error", err)
	}

	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisCache.Close()

	var verifier captcha.Verifier = captcha.AllowAll{}
	if cfg.Captcha.PrivateKey != "" {
		verifier = captcha.NewRecaptcha(cfg.Captcha)
	} else {
		slog.Warn("RECAPTCHA_PRIVATE_KEY is not set; contact submissions are not captcha-checked")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	domainMetrics, err := metrics.NewDomain(reg)
	if err != nil {
		logging.Fatal("failed to register domain metrics", "error", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logging.Fatal("failed to register http metrics", "error", err)
	}

	ttl := cfg.Redis.TTL
	profiles := service.NewProfileService(postgres.NewProfilePostgres(db), objStore, domainMetrics)
	site := &service.Site{
		Profiles:    profiles,
		Educations:  service.NewEducationCatalog(postgres.NewEducationPostgres(db), redisCache, ttl),
		Experiences: service.NewExperienceCatalog(postgres.NewExperiencePostgres(db), redisCache, ttl),
		Leaderships: service.NewLeadershipCatalog(postgres.NewLeadershipPostgres(db), redisCache, ttl),
		Courses:     service.NewCourseCatalog(postgres.NewCoursePostgres(db), redisCache, ttl),
		Skills:      service.NewSkillCatalog(postgres.NewSkillPostgres(db), redisCache, ttl),
		MyContacts:  service.NewMyContactCatalog(postgres.NewMyContactPostgres(db), redisCache, ttl),
		Feedbacks:   service.NewFeedbackCatalog(postgres.NewFeedbackPostgres(db), redisCache, ttl),
		Images:      service.NewProjectImageCatalog(postgres.NewProjectImagePostgres(db), redisCache, ttl),
		Videos:      service.NewVideoCatalog(postgres.NewVideoPostgres(db), redisCache, ttl),
		Portfolios:  service.NewPortfolioCatalog(postgres.NewPortfolioPostgres(db), redisCache, ttl),
	}
	contacts := service.NewContactService(postgres.NewContactPostgres(db), verifier,
		mail.NewSMTP(cfg.Mail), cfg.Mail.AdminEmail, domainMetrics)
	assets := service.NewAssetService(objStore, postgres.NewAssetPostgres(db))
	auth := service.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	brand, err := bootstrap.Run(ctx, bootstrap.Deps{DB: db, Profiles: profiles}, cfg)
	if err != nil {
		logging.Fatal("startup failed", "error", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		Views:        web.NewEngine(brand.MediaBaseURL),
		BodyLimit:    bodyLimit,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(cfg.Location()))
	app.Use(httpMetrics.Handler())

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:       db,
		Pingers:  []handlers.Pinger{redisCache},
		Site:     site,
		Contacts: contacts,
		Assets:   assets,
		Auth:     auth,
		Brand:    brand,
		Gatherer: reg,
	})

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	slog.Info("server starting", "addr", addr, "app_host", cfg.AppHost)
	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal("failed to start server", "error", err)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		slog.Error("tracing shutdown failed", "error", err)
	}
}

package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio/internal/bootstrap"
	"portfolio/internal/http/middleware"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// AdminAuth issues and verifies administrator tokens.
type AdminAuth interface {
	Authenticator
	middleware.TokenValidator
}

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	DB       *sql.DB
	Pingers  []Pinger
	Site     *service.Site
	Contacts service.ContactService
	Assets   service.AssetService
	Auth     AdminAuth
	Brand    *bootstrap.Branding
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.DB, d.Pingers...))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	admin := middleware.RequireAdmin(d.Auth)
	api := app.Group("/api")

	api.Post("/auth/login", Login(d.Auth))
	api.Post("/contact", SubmitContact(d.Contacts))
	api.Post("/download-resume/", middleware.NoStore(), DownloadResume(d.Site.Profiles))

	s := d.Site
	RegisterCatalog[model.Education](api, s.Educations, admin)
	RegisterCatalog[model.Experience](api, s.Experiences, admin)
	RegisterCatalog[model.Leadership](api, s.Leaderships, admin)
	RegisterCatalog[model.Course](api, s.Courses, admin)
	RegisterCatalog[model.ProjectImage](api, s.Images, admin)
	RegisterCatalog[model.Video](api, s.Videos, admin)
	RegisterCatalog[model.MyContact](api, s.MyContacts, admin)
	RegisterCatalog[model.Feedback](api, s.Feedbacks, admin)
	RegisterCatalog[model.Skill](api, s.Skills, admin)
	RegisterCatalog[model.Portfolio](api, s.Portfolios, admin)

	profiles := api.Group("/profiles")
	profiles.Get("/", ListProfiles(s.Profiles))
	profiles.Get("/:id", GetProfile(s))
	profiles.Post("/", admin, CreateProfile(s.Profiles))
	profiles.Put("/:id", admin, UpdateProfile(s.Profiles))
	profiles.Delete("/:id", admin, DeleteProfile(s.Profiles))
	profiles.Post("/:id/resume", admin, UploadResume(s.Profiles))
	profiles.Put("/:id/resume-password", admin, middleware.NoStore(), SetResumePassword(s.Profiles))

	contacts := api.Group("/contacts", admin, middleware.NoStore())
	contacts.Get("/", ListContacts(d.Contacts))
	contacts.Get("/:id", GetContact(d.Contacts))
	contacts.Delete("/:id", DeleteContact(d.Contacts))

	assets := api.Group("/assets", admin)
	assets.Get("/", ListAssets(d.Assets))
	assets.Post("/", UploadAsset(d.Assets))
	assets.Get("/:id", GetAsset(d.Assets))
	assets.Get("/:id/link", GetAssetLink(d.Assets))
	assets.Delete("/:id", DeleteAsset(d.Assets))

	NewPages(s, d.Contacts, d.Brand).Register(app)
}

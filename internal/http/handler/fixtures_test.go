package handler

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"portfolio/internal/bootstrap"
	"portfolio/internal/model"
	repoMocks "portfolio/internal/repository/mocks"
	"portfolio/internal/service"
	serviceMocks "portfolio/internal/service/mocks"
	"portfolio/web"
)

type testSite struct {
	site        *service.Site
	profiles    *serviceMocks.MockProfileService
	educations  *repoMocks.MockCRUD[model.Education]
	experiences *repoMocks.MockCRUD[model.Experience]
	leaderships *repoMocks.MockCRUD[model.Leadership]
	courses     *repoMocks.MockCRUD[model.Course]
	skills      *repoMocks.MockCRUD[model.Skill]
	myContacts  *repoMocks.MockCRUD[model.MyContact]
	feedbacks   *repoMocks.MockCRUD[model.Feedback]
	images      *repoMocks.MockCRUD[model.ProjectImage]
	videos      *repoMocks.MockCRUD[model.Video]
	portfolios  *repoMocks.MockPortfolioRepository
}

func newTestSite() *testSite {
	ts := &testSite{
		profiles:    new(serviceMocks.MockProfileService),
		educations:  new(repoMocks.MockCRUD[model.Education]),
		experiences: new(repoMocks.MockCRUD[model.Experience]),
		leaderships: new(repoMocks.MockCRUD[model.Leadership]),
		courses:     new(repoMocks.MockCRUD[model.Course]),
		skills:      new(repoMocks.MockCRUD[model.Skill]),
		myContacts:  new(repoMocks.MockCRUD[model.MyContact]),
		feedbacks:   new(repoMocks.MockCRUD[model.Feedback]),
		images:      new(repoMocks.MockCRUD[model.ProjectImage]),
		videos:      new(repoMocks.MockCRUD[model.Video]),
		portfolios:  new(repoMocks.MockPortfolioRepository),
	}
	ts.site = &service.Site{
		Profiles:    ts.profiles,
		Educations:  service.NewEducationCatalog(ts.educations, nil, 0),
		Experiences: service.NewExperienceCatalog(ts.experiences, nil, 0),
		Leaderships: service.NewLeadershipCatalog(ts.leaderships, nil, 0),
		Courses:     service.NewCourseCatalog(ts.courses, nil, 0),
		Skills:      service.NewSkillCatalog(ts.skills, nil, 0),
		MyContacts:  service.NewMyContactCatalog(ts.myContacts, nil, 0),
		Feedbacks:   service.NewFeedbackCatalog(ts.feedbacks, nil, 0),
		Images:      service.NewProjectImageCatalog(ts.images, nil, 0),
		Videos:      service.NewVideoCatalog(ts.videos, nil, 0),
		Portfolios:  service.NewPortfolioCatalog(ts.portfolios, nil, 0),
	}
	return ts
}

func testBrand() *bootstrap.Branding {
	return &bootstrap.Branding{Header: "Ada Lovelace", Title: "Ada's Site", IndexTitle: "Hello there"}
}

func testAuth() *service.AuthService {
	return service.NewAuthService("admin", "s3cret", "test-signing-key", time.Hour)
}

func adminToken(t *testing.T, a *service.AuthService) string {
	t.Helper()
	tok, err := a.Login("admin", "s3cret")
	require.NoError(t, err)
	return "Bearer " + tok.AccessToken
}

// newTestApp wires the full route table the way main does, minus the database.
func newTestApp(ts *testSite, contacts service.ContactService, assets service.AssetService, auth AdminAuth) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		Views:        web.NewEngine(""),
	})
	RegisterRoutes(app, Dependencies{
		Site:     ts.site,
		Contacts: contacts,
		Assets:   assets,
		Auth:     auth,
		Brand:    testBrand(),
	})
	return app
}

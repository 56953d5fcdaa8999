package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/bootstrap"
	"portfolio/internal/service"
)

const (
	mainLayout      = "layouts/main"
	projectsPerPage = 6
)

// Pages renders the public site.
type Pages struct {
	site     *service.Site
	contacts service.ContactService
	brand    *bootstrap.Branding
}

// NewPages creates the page handlers.
func NewPages(site *service.Site, contacts service.ContactService, brand *bootstrap.Branding) *Pages {
	return &Pages{site: site, contacts: contacts, brand: brand}
}

// Register mounts every page route on app.
func (p *Pages) Register(app fiber.Router) {
	app.Get("/", p.Home)
	app.Get("/home/", p.Home)
	app.Get("/about", p.About)
	app.Get("/resume", p.Resume)
	app.Get("/education", p.Resume)
	app.Get("/skills", p.Skills)
	app.Get("/courses", p.Courses)
	app.Get("/resumeprojects", p.ResumeProjects)
	app.Get("/leadership", p.Leadership)
	app.Get("/portfolio/", p.Portfolio)
	app.Get("/portfolio/:slug", p.PortfolioDetail)
	app.Get("/contact", p.ContactForm)
	app.Post("/contact", p.ContactSubmit)
}

// render fills in the branding and the canonical profile shared by every page.
func (p *Pages) render(c *fiber.Ctx, status int, name, title string, data fiber.Map) error {
	profile, err := p.site.Profiles.Canonical(c.UserContext())
	if err != nil && !errors.Is(err, service.ErrProfileNotFound) {
		return err
	}
	data["Brand"] = p.brand
	data["Title"] = title
	data["Profile"] = profile
	return c.Status(status).Render(name, data, mainLayout)
}

func (p *Pages) notFound(c *fiber.Ctx) error {
	return p.render(c, fiber.StatusNotFound, "404", "Not found", fiber.Map{})
}

func (p *Pages) Home(c *fiber.Ctx) error {
	return p.render(c, fiber.StatusOK, "home", "", fiber.Map{})
}

func (p *Pages) About(c *fiber.Ctx) error {
	contacts, err := p.site.MyContacts.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "about", "About", fiber.Map{"Contacts": contacts})
}

func (p *Pages) Resume(c *fiber.Ctx) error {
	educations, err := p.site.Educations.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "resume", "Resume", fiber.Map{"Educations": educations})
}

func (p *Pages) Skills(c *fiber.Ctx) error {
	skills, err := p.site.Skills.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "skills", "Skills", fiber.Map{"Skills": skills})
}

func (p *Pages) Courses(c *fiber.Ctx) error {
	courses, err := p.site.Courses.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "courses", "Courses", fiber.Map{"Courses": courses})
}

func (p *Pages) ResumeProjects(c *fiber.Ctx) error {
	projects, err := p.site.Portfolios.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "resumeprojects", "Projects", fiber.Map{"Projects": projects})
}

func (p *Pages) Leadership(c *fiber.Ctx) error {
	items, err := p.site.Leaderships.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return p.render(c, fiber.StatusOK, "leadership", "Leadership", fiber.Map{"Leaderships": items})
}

// Portfolio lists active projects six per page. Pages outside the range are 404,
// except page 1 of an empty list.
func (p *Pages) Portfolio(c *fiber.Ctx) error {
	projects, err := p.site.Portfolios.ListActive(c.UserContext())
	if err != nil {
		return err
	}

	pages := (len(projects) + projectsPerPage - 1) / projectsPerPage
	if pages == 0 {
		pages = 1
	}
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 || page > pages {
		return p.notFound(c)
	}

	start := (page - 1) * projectsPerPage
	end := min(start+projectsPerPage, len(projects))

	return p.render(c, fiber.StatusOK, "projects", "Portfolio", fiber.Map{
		"Projects": projects[start:end],
		"Page":     page,
		"Pages":    pages,
		"HasPrev":  page > 1,
		"HasNext":  page < pages,
		"PrevPage": page - 1,
		"NextPage": page + 1,
	})
}

func (p *Pages) PortfolioDetail(c *fiber.Ctx) error {
	project, err := p.site.Portfolios.BySlug(c.UserContext(), c.Params("slug"))
	if errors.Is(err, service.ErrNotFound) {
		return p.notFound(c)
	}
	if err != nil {
		return err
	}
	name := ""
	if project.Name != nil {
		name = *project.Name
	}
	return p.render(c, fiber.StatusOK, "portfolio_details", name, fiber.Map{"Project": project})
}

func (p *Pages) contactPage(c *fiber.Ctx, form service.ContactInput, errs map[string]string, success, notice string) error {
	contacts, err := p.site.MyContacts.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	if errs == nil {
		errs = map[string]string{}
	}
	return p.render(c, fiber.StatusOK, "contact", "Contact", fiber.Map{
		"Contacts": contacts,
		"Form":     form,
		"Errors":   errs,
		"Success":  success,
		"Notice":   notice,
	})
}

// ContactForm renders the empty form, with the success flash after a redirect from
// ContactSubmit.
func (p *Pages) ContactForm(c *fiber.Ctx) error {
	success := ""
	if c.Query("sent") == "1" {
		success = contactSuccessMessage
	}
	return p.contactPage(c, service.ContactInput{}, nil, success, "")
}

// ContactSubmit handles the HTML form. A stored message redirects to GET /contact so
// a reload does not post it again. Invalid input re-renders the form with the field
// errors and the visitor's values; a bad mail header is reported inline.
func (p *Pages) ContactSubmit(c *fiber.Ctx) error {
	var in service.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	_, err := p.contacts.Submit(c.UserContext(), in, c.IP())
	var verr *service.ValidationError
	switch {
	case err == nil:
		return c.Redirect("/contact?sent=1", fiber.StatusSeeOther)
	case errors.As(err, &verr):
		in.CaptchaToken = ""
		return p.contactPage(c, in, verr.Fields, "", "")
	case errors.Is(err, service.ErrBadHeader):
		return p.contactPage(c, service.ContactInput{}, nil, "", badHeaderMessage)
	default:
		return err
	}
}

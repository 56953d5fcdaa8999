package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// Overviewer builds a profile together with the site's active content.
type Overviewer interface {
	Overview(ctx context.Context, profileID string) (*service.ProfileOverview, error)
}

// ProfileInput is the body accepted when creating a profile. Password, when set,
// becomes the resume download password.
type ProfileInput struct {
	model.Profile
	Password string `json:"password"`
}

type passwordInput struct {
	Password string `json:"password" form:"password"`
}

// ListProfiles godoc
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Profile]
// @Router /api/profiles [get]
func ListProfiles(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.JSON(res)
	}
}

// GetProfile godoc
// @Summary Profile with its active education, experience, skills, projects and links
// @Tags profiles
// @Produce json
// @Param id path string true "profile id"
// @Success 200 {object} service.ProfileOverview
// @Failure 404 {object} errorPayload
// @Router /api/profiles/{id} [get]
func GetProfile(o Overviewer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		res, err := o.Overview(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.JSON(res)
	}
}

// CreateProfile godoc
// @Summary Create a profile
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body ProfileInput true "profile"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Router /api/profiles [post]
func CreateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in ProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), &in.Profile, in.Password)
		if err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProfile godoc
// @Summary Update a profile
// @Description The resume password and resume file have dedicated endpoints and are not changed here.
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "profile id"
// @Param body body model.Profile true "profile"
// @Success 200 {object} model.Profile
// @Router /api/profiles/{id} [put]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		var p model.Profile
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Update(c.UserContext(), id, &p)
		if err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.JSON(out)
	}
}

func DeleteProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadResume godoc
// @Summary Attach a resume PDF
// @Tags profiles
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "profile id"
// @Param resume formData file true "PDF, at most 10 MB"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Router /api/profiles/{id}/resume [post]
func UploadResume(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		fh, err := c.FormFile("resume")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "resume file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		p, err := svc.UploadResume(c.UserContext(), id, f)
		if err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.JSON(p)
	}
}

// SetResumePassword godoc
// @Summary Set the resume download password
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Param id path string true "profile id"
// @Param body body passwordInput true "new password"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /api/profiles/{id}/resume-password [put]
func SetResumePassword(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		var in passwordInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.SetResumePassword(c.UserContext(), id, in.Password); err != nil {
			return writeServiceError(c, err, "profile not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// DownloadResume godoc
// @Summary Download the owner's resume
// @Description Streams the canonical profile's resume PDF when the password verifies.
// @Tags resume
// @Accept json,x-www-form-urlencoded
// @Produce application/pdf
// @Param body body passwordInput true "resume password"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/download-resume/ [post]
func DownloadResume(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in passwordInput
		// a missing or unparsable body is treated as a missing password
		_ = c.BodyParser(&in)

		rc, info, err := svc.OpenResume(c.UserContext(), in.Password)
		if err != nil {
			var readErr *service.ResumeReadError
			switch {
			case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrResumeNotUploaded):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, service.ErrIncorrectPassword):
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
			case errors.As(err, &readErr):
				slog.ErrorContext(c.UserContext(), "resume read failed",
					"request_id", requestIDFromCtx(c), "error", readErr.Err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": readErr.Error()})
			default:
				slog.ErrorContext(c.UserContext(), "resume lookup failed",
					"request_id", requestIDFromCtx(c), "error", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}

		c.Attachment("resume.pdf")
		c.Set(fiber.HeaderContentType, "application/pdf")

		size := int(info.Size)
		if size <= 0 {
			size = -1
		}
		// the response owns rc from here and closes it after writing
		return c.SendStream(rc, size)
	}
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

const (
	contactSuccessMessage = "Your message has been submitted. Thank you!"
	badHeaderMessage      = "Invalid header found"
)

// ContactResponse is the body of a contact submission.
type ContactResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *model.ContactMessage `json:"data,omitempty"`
}

// SubmitContact godoc
// @Summary Send a message to the site owner
// @Description Validates the form, verifies the reCAPTCHA token, stores the message and emails the owner.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body service.ContactInput true "message"
// @Success 201 {object} ContactResponse
// @Success 200 {object} ContactResponse "stored, but the notification had an invalid header"
// @Failure 400 {object} errorPayload
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ContactInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		msg, err := svc.Submit(c.UserContext(), in, c.IP())
		switch {
		case errors.Is(err, service.ErrBadHeader):
			return c.Status(fiber.StatusOK).JSON(ContactResponse{Success: false, Message: badHeaderMessage})
		case err != nil:
			return writeServiceError(c, err, "contact message not found")
		}
		return c.Status(fiber.StatusCreated).JSON(ContactResponse{Success: true, Message: contactSuccessMessage, Data: msg})
	}
}

// ListContacts godoc
// @Summary List received messages
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.ContactMessage]
// @Router /api/contacts [get]
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err, "contact message not found")
		}
		return c.JSON(res)
	}
}

func GetContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		msg, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "contact message not found")
		}
		return c.JSON(msg)
	}
}

func DeleteContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "contact message not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

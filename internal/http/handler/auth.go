package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// Authenticator issues administrator tokens.
type Authenticator interface {
	Login(username, password string) (*service.Token, error)
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login godoc
// @Summary Obtain an administrator token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginInput true "credentials"
// @Success 200 {object} service.Token
// @Failure 401 {object} errorPayload
// @Router /api/auth/login [post]
func Login(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		tok, err := a.Login(in.Username, in.Password)
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
		}
		return c.JSON(tok)
	}
}

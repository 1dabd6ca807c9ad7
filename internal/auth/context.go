package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/models"
)

// LocalsKey is where the token middleware stores the authenticated user.
const LocalsKey = "user"

// CurrentUser returns the user loaded by the token middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(LocalsKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

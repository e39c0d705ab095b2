package context

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// userKey is the locals key used to store and retrieve the authenticated user.
const (
	userKey string = "currentUser"
)

// SetUser stores the authenticated user on the request context.
// It is called by the authentication middleware once the bearer token
// has been resolved to an account.
//
// Parameters:
//   - c: The fiber request context
//   - user: The authenticated user to attach
func SetUser(c *fiber.Ctx, user model.User) {
	c.Locals(userKey, user)
}

// User retrieves the authenticated user from the request context.
//
// Returns the user and a boolean indicating whether the authentication
// middleware attached one to this request.
func User(c *fiber.Ctx) (model.User, bool) {
	user, ok := c.Locals(userKey).(model.User)
	return user, ok
}

package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	httpctx "github.com/anhminhnguyen3110/chatbot/internal/api/http/context"
	"github.com/anhminhnguyen3110/chatbot/internal/logger"
	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// AuthService resolves bearer tokens to users.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and attaches the user to the request.
type Authenticate struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the resolved user on the request context.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
	if tokenString == "" {
		return unauthorized(c)
	}

	user, err := m.authService.Authenticate(c.UserContext(), tokenString)
	if err != nil {
		m.logger.Info("Authenticate middleware: token rejected",
			"path", c.Path(),
			"error", err.Error())
		return unauthorized(c)
	}

	httpctx.SetUser(c, user)

	return c.Next()
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return fiber.NewError(fiber.StatusUnauthorized, "Could not validate credentials")
}

package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	httpctx "github.com/anhminhnguyen3110/chatbot/internal/api/http/context"
	"github.com/anhminhnguyen3110/chatbot/internal/logger"
	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email string, password string) (model.User, error)
	Login(ctx context.Context, email string, password string) (string, model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest carries form tags as well: the login endpoint accepts the
// OAuth2 password form used by browser clients alongside plain JSON.
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsGuest   bool      `json:"is_guest"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsGuest:   user.IsGuest,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register creates a new account and returns it.
func (h *Auth) Register(c *fiber.Ctx) error {
	h.logger.Debug("Auth handler: processing registration request")

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.authService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("Auth handler: registration completed",
		"email", user.Email,
		"user_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user))
}

// Login checks credentials and returns a bearer token with the account.
func (h *Auth) Login(c *fiber.Ctx) error {
	h.logger.Debug("Auth handler: processing login request")

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	accessToken, user, err := h.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Username,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("Auth handler: login completed",
		"email", user.Email,
		"user_id", user.ID)

	return c.JSON(tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        newUserResponse(user),
	})
}

// Me returns the account the request's bearer token belongs to.
func (h *Auth) Me(c *fiber.Ctx) error {
	user, ok := httpctx.User(c)
	if !ok {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fiber.NewError(fiber.StatusUnauthorized, "Could not validate credentials")
	}

	return c.JSON(newUserResponse(user))
}

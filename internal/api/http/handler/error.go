package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// ErrorHandler renders every error escaping a handler as a JSON body.
// It is installed as the fiber app's error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect email or password")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}

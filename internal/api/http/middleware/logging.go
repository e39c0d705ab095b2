package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/anhminhnguyen3110/chatbot/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	// Log incoming request
	l.logger.Info("HTTP request started",
		"method", c.Method(),
		"path", c.Path())

	// Call the handler
	err := c.Next()

	// Calculate duration
	duration := time.Since(start)

	// Determine status: on error the final code comes from the error,
	// not the response written so far
	statusCode := c.Response().StatusCode()
	if err != nil {
		statusCode = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			statusCode = fiberErr.Code
		}
	}

	// Log completed request
	l.logger.Info("HTTP request completed",
		"method", c.Method(),
		"path", c.Path(),
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)

	// Log error details if present
	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
			"status", statusCode)
	}

	return err
}

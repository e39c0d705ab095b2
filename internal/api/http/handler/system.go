package handler

import "github.com/gofiber/fiber/v2"

// Health reports service liveness.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "AI Chatbot Backend is running",
	})
}

// Root describes the API entry point.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Chatbot Backend API",
		"version": "1.0.0",
		"docs":    "/docs",
	})
}

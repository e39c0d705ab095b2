package handler

import "github.com/gofiber/fiber/v2"

// Placeholder collection endpoints. Each returns an empty list until the
// backing feature lands.

func ListChats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"chats": []any{}})
}

func ListDocuments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"documents": []any{}})
}

func ListFiles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"files": []any{}})
}

func ListHistory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"history": []any{}})
}

func ListSuggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suggestions": []any{}})
}

func ListVotes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"votes": []any{}})
}

package controllers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck reports process liveness.
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
	})
}

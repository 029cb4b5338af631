package handlers

import "github.com/gofiber/fiber/v2"

type DashboardHandler struct{}

func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{})
}

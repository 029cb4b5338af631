package handlers

import (
	"github.com/gofiber/fiber/v2"

	"saleslens/internal/log"
	"saleslens/internal/services"
)

type ImportHandler struct {
	Importer *services.ImportService
}

func (h *ImportHandler) Run(c *fiber.Ctx) error {
	count, err := h.Importer.Run(c.UserContext())
	if err != nil {
		log.Error(c, "import.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error importing transactions"})
	}
	log.Info(c, "import.done", map[string]any{"count": count})
	return c.JSON(fiber.Map{"message": "Transactions imported successfully!", "count": count})
}

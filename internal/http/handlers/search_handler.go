package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"saleslens/internal/log"
	"saleslens/internal/services"
	"saleslens/internal/validate"
)

type SearchHandler struct {
	Search *services.SearchService
}

func (h *SearchHandler) List(c *fiber.Ctx) error {
	q := validate.Q(c.Query("search"))

	page, ok := validate.IntOrDefault(c.Query("page"), 1)
	if !ok {
		log.Warn(c, "validation.fail", map[string]any{"field": "page", "value": c.Query("page")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page must be a number"})
	}
	perPage, ok := validate.IntOrDefault(c.Query("perPage"), 10)
	if !ok {
		log.Warn(c, "validation.fail", map[string]any{"field": "perPage", "value": c.Query("perPage")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "perPage must be a number"})
	}

	result, err := h.Search.Search(c.UserContext(), q, page, perPage)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Error(c, "search.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch transactions"})
	}
	return c.JSON(result)
}

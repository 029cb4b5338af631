package handlers

import (
	"github.com/gofiber/fiber/v2"

	"saleslens/internal/domain"
	"saleslens/internal/log"
	"saleslens/internal/services"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// window resolves month/year or writes the 400 itself.
func (h *ReportHandler) window(c *fiber.Ctx) (domain.Window, bool) {
	w, err := services.ResolveWindow(c.Query("month"), c.Query("year"))
	if err != nil {
		log.Warn(c, "validation.fail", map[string]any{
			"field": "month/year", "month": c.Query("month"), "year": c.Query("year"),
		})
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month and year are required"})
		return domain.Window{}, false
	}
	return w, true
}

func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	w, ok := h.window(c)
	if !ok {
		return nil
	}
	stats, err := h.Reports.Statistics(c.UserContext(), w)
	if err != nil {
		log.Error(c, "statistics.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch statistics"})
	}
	return c.JSON(stats)
}

func (h *ReportHandler) BarChart(c *fiber.Ctx) error {
	w, ok := h.window(c)
	if !ok {
		return nil
	}
	buckets, err := h.Reports.Histogram(c.UserContext(), w)
	if err != nil {
		log.Error(c, "barchart.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch price range data"})
	}
	return c.JSON(buckets)
}

func (h *ReportHandler) PieChart(c *fiber.Ctx) error {
	w, ok := h.window(c)
	if !ok {
		return nil
	}
	cats, err := h.Reports.Categories(c.UserContext(), w)
	if err != nil {
		log.Error(c, "piechart.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch category data"})
	}
	return c.JSON(cats)
}

func (h *ReportHandler) Combined(c *fiber.Ctx) error {
	w, ok := h.window(c)
	if !ok {
		return nil
	}
	report, err := h.Reports.Combined(c.UserContext(), w)
	if err != nil {
		log.Error(c, "combined.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch combined report"})
	}
	return c.JSON(report)
}

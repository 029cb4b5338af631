package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"saleslens/internal/config"
	"saleslens/internal/http/handlers"
	applog "saleslens/internal/log"
	"saleslens/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with a generic payload; never leak internals.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())

	deps := handlers.NewDeps(db, cfg)

	// Dashboard
	app.Get("/", deps.DashboardHandler.Home)

	// API
	api := app.Group("/api/transactions")
	api.Get("/search", deps.SearchHandler.List)
	api.Get("/statistics", deps.ReportHandler.Statistics)
	api.Get("/barchart", deps.ReportHandler.BarChart)
	api.Get("/piechart", deps.ReportHandler.PieChart)
	api.Get("/combined", deps.ReportHandler.Combined)
	api.Get("/import", deps.ImportHandler.Run)

	log.Printf("[server] listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

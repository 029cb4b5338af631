package handlers

import (
	"saleslens/internal/config"
	"saleslens/internal/repos"
	"saleslens/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SearchHandler    *SearchHandler
	ReportHandler    *ReportHandler
	ImportHandler    *ImportHandler
	DashboardHandler *DashboardHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	saleRepo := repos.NewSaleRepo(db)

	searchSvc := services.NewSearchService(saleRepo)
	reportSvc := services.NewReportService(saleRepo)
	importSvc := services.NewImportService(saleRepo, cfg.FeedURL)

	return &Deps{
		SearchHandler:    &SearchHandler{Search: searchSvc},
		ReportHandler:    &ReportHandler{Reports: reportSvc},
		ImportHandler:    &ImportHandler{Importer: importSvc},
		DashboardHandler: &DashboardHandler{},
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"saleslens/internal/domain"
	"saleslens/internal/repos"
)

// feedItem mirrors one entry of the external product feed. Every field is
// optional on the wire; toRecord fills the gaps.
type feedItem struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Sold        *bool    `json:"sold"`
	DateOfSale  *string  `json:"dateOfSale"`
}

type ImportService struct {
	Sales   *repos.SaleRepo
	client  *resty.Client
	feedURL string
}

func NewImportService(sales *repos.SaleRepo, feedURL string) *ImportService {
	return &ImportService{
		Sales:   sales,
		client:  resty.New().SetTimeout(30 * time.Second),
		feedURL: feedURL,
	}
}

// Run fetches the feed and bulk-inserts its records, returning how many went
// in. One-shot job; retries belong to whoever triggers it.
func (s *ImportService) Run(ctx context.Context) (int, error) {
	var items []feedItem
	res, err := s.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get(s.feedURL)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}
	if res.IsError() {
		return 0, fmt.Errorf("feed returned %s", res.Status())
	}

	now := time.Now().UTC()
	recs := make([]domain.SaleRecord, 0, len(items))
	for _, it := range items {
		recs = append(recs, it.toRecord(now))
	}
	return s.Sales.InsertMany(ctx, recs)
}

func (it feedItem) toRecord(now time.Time) domain.SaleRecord {
	rec := domain.SaleRecord{
		ID:          uuid.NewString(),
		Title:       "Untitled",
		Description: "No description",
		Image:       "No image",
		DateOfSale:  now.Format(time.RFC3339),
	}
	if it.Title != nil {
		rec.Title = *it.Title
	}
	if it.Description != nil {
		rec.Description = *it.Description
	}
	if it.Image != nil {
		rec.Image = *it.Image
	}
	if it.Price != nil {
		rec.Price = *it.Price
	}
	if it.Sold != nil {
		rec.Sold = *it.Sold
	}
	if it.DateOfSale != nil {
		if t, err := time.Parse(time.RFC3339, *it.DateOfSale); err == nil {
			rec.DateOfSale = t.UTC().Format(time.RFC3339)
		}
	}
	return rec
}

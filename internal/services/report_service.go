package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"saleslens/internal/domain"
	"saleslens/internal/repos"
)

// Histogram boundaries are fixed product-wide. The overflow label is kept
// verbatim from the chart contract the frontend was built against.
var priceBoundaries = []float64{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

const overflowLabel = "901-above"

type ReportService struct {
	Sales *repos.SaleRepo
}

func NewReportService(sales *repos.SaleRepo) *ReportService {
	return &ReportService{Sales: sales}
}

// Statistics issues three independent window queries. Records are
// append-only and SQLite serializes writes, so the sub-counts can only
// diverge if an import commits mid-call; no snapshot isolation is claimed.
func (s *ReportService) Statistics(ctx context.Context, w domain.Window) (domain.Statistics, error) {
	total, err := s.Sales.SumSoldPrices(ctx, w)
	if err != nil {
		return domain.Statistics{}, err
	}
	sold, err := s.Sales.CountSold(ctx, w, true)
	if err != nil {
		return domain.Statistics{}, err
	}
	notSold, err := s.Sales.CountSold(ctx, w, false)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.Statistics{TotalSales: total, SoldCount: sold, NotSoldCount: notSold}, nil
}

// Histogram zero-fills against the full label list: GROUP BY drops empty
// buckets, but callers need every bucket present for a stable chart shape.
func (s *ReportService) Histogram(ctx context.Context, w domain.Window) ([]domain.PriceBucket, error) {
	counts, err := s.Sales.PriceBuckets(ctx, w, priceBoundaries, overflowLabel)
	if err != nil {
		return nil, err
	}

	labels := domain.BucketLabels(priceBoundaries, overflowLabel)
	out := make([]domain.PriceBucket, 0, len(labels))
	for _, label := range labels {
		out = append(out, domain.PriceBucket{Range: label, Count: counts[label]})
	}
	return out, nil
}

// Categories groups window records by title, one entry per distinct title.
func (s *ReportService) Categories(ctx context.Context, w domain.Window) ([]domain.CategoryCount, error) {
	return s.Sales.CategoryCounts(ctx, w)
}

// Combined fans the three aggregates out on one errgroup sharing the
// caller's context. The first failure cancels the in-flight queries and
// fails the whole report; a partial report is never returned.
func (s *ReportService) Combined(ctx context.Context, w domain.Window) (domain.CombinedReport, error) {
	var report domain.CombinedReport

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.Statistics(ctx, w)
		if err != nil {
			return err
		}
		report.Statistics = stats
		return nil
	})
	g.Go(func() error {
		buckets, err := s.Histogram(ctx, w)
		if err != nil {
			return err
		}
		report.BarChart = buckets
		return nil
	})
	g.Go(func() error {
		cats, err := s.Categories(ctx, w)
		if err != nil {
			return err
		}
		report.PieChart = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.CombinedReport{}, err
	}
	return report, nil
}

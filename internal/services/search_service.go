package services

import (
	"context"
	"errors"

	"saleslens/internal/domain"
	"saleslens/internal/repos"
)

var ErrInvalidInput = errors.New("invalid pagination parameters")

type SearchService struct {
	Sales *repos.SaleRepo
}

func NewSearchService(sales *repos.SaleRepo) *SearchService {
	return &SearchService{Sales: sales}
}

// Search spans the whole store; month windows never apply here. An empty q
// matches everything. page < 1 is clamped to 1 rather than rejected so stale
// dashboard links keep working; perPage < 1 is an error because the offset
// and page math is undefined without it.
func (s *SearchService) Search(ctx context.Context, q string, page, perPage int) (domain.SearchResult, error) {
	if perPage < 1 {
		return domain.SearchResult{}, ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	records, err := s.Sales.Search(ctx, q, perPage, offset)
	if err != nil {
		return domain.SearchResult{}, err
	}
	total, err := s.Sales.CountMatching(ctx, q)
	if err != nil {
		return domain.SearchResult{}, err
	}

	return domain.SearchResult{
		Transactions: records,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
		TotalPages:   (total + perPage - 1) / perPage,
	}, nil
}

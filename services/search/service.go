package search

import (
	"context"
	"net/url"

	hotelRepo "hotelbooking/database/repository/hotel"
	"hotelbooking/models"
	"hotelbooking/utils"

	"go.uber.org/zap"
)

// SearchService answers hotel search queries.
type SearchService interface {
	// Search parses raw query values and returns one page of matching hotels.
	Search(ctx context.Context, q url.Values) (*models.HotelSearchResponse, error)
	// Execute runs already-parsed params.
	Execute(ctx context.Context, p models.SearchParams) (*models.HotelSearchResponse, error)
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Repo hotelRepo.HotelRepository
}

func (s *DefaultSearchService) Search(ctx context.Context, q url.Values) (*models.HotelSearchResponse, error) {
	p, err := ParseSearchParams(q)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, p)
}

func (s *DefaultSearchService) Execute(ctx context.Context, p models.SearchParams) (*models.HotelSearchResponse, error) {
	plan := BuildSearchPlan(p)

	hotels, total, err := s.Repo.Search(ctx, plan)
	if err != nil {
		utils.GetLogger().Error("Hotel search failed", zap.Int("page", plan.Params.Page), zap.Error(err))
		return nil, utils.NewInternalError("Could not fetch Hotels!", err)
	}

	return &models.HotelSearchResponse{
		Data: hotels,
		Pagination: models.Pagination{
			Total: total,
			Page:  plan.Params.Page,
			Pages: TotalPages(total),
		},
	}, nil
}

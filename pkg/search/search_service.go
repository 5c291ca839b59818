package search

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/pkg/recipe"
	"context"
)

type (
	SearchService interface {
		SearchRecipes(ctx context.Context, criteria domain.SearchCriteria, page int) (domain.SearchPage, error)
		SearchRecipesJSON(ctx context.Context, criteria domain.SearchCriteria, page, pageSize int) (domain.SearchPage, error)
		ReconcileRatings(ctx context.Context) (domain.ReconcileRatingsResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
	}
)

func NewSearchService(searchRepository SearchRepository) SearchService {
	return &searchService{searchRepository: searchRepository}
}

// SearchRecipes serves the results page surface with its fixed page length.
func (s *searchService) SearchRecipes(ctx context.Context, criteria domain.SearchCriteria, page int) (domain.SearchPage, error) {
	return s.search(ctx, criteria, NormalizePage(page), DefaultPageSize)
}

// SearchRecipesJSON serves the API surface, where callers pick a page size
// up to the cap and get the cap when they pick none.
func (s *searchService) SearchRecipesJSON(ctx context.Context, criteria domain.SearchCriteria, page, pageSize int) (domain.SearchPage, error) {
	return s.search(ctx, criteria, NormalizePage(page), NormalizeJSONPageSize(pageSize))
}

func (s *searchService) search(ctx context.Context, criteria domain.SearchCriteria, page, pageSize int) (domain.SearchPage, error) {
	filters := ParseFilters(criteria)
	order := ResolveSort(criteria.SortBy)

	recipes, count, err := s.searchRepository.SearchRecipes(ctx, filters, order, page, pageSize)
	if err != nil {
		return domain.SearchPage{}, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, recipe.Summarize(r))
	}

	return domain.SearchPage{
		Recipes:    summaries,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: count,
		TotalPages: TotalPages(count, pageSize),
	}, nil
}

func (s *searchService) ReconcileRatings(ctx context.Context) (domain.ReconcileRatingsResponse, error) {
	checked, updated, err := s.searchRepository.ReconcileRatings(ctx)
	if err != nil {
		return domain.ReconcileRatingsResponse{}, err
	}
	return domain.ReconcileRatingsResponse{
		RecipesChecked: checked,
		RecipesUpdated: updated,
	}, nil
}

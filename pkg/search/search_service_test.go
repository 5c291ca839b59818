package search

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
)

type fakeSearchRepository struct {
	recipes []*entities.Recipe

	lastFilters  Filters
	lastOrder    string
	lastPage     int
	lastPageSize int
}

func (f *fakeSearchRepository) SearchRecipes(_ context.Context, filters Filters, order string, page, pageSize int) ([]*entities.Recipe, int64, error) {
	f.lastFilters = filters
	f.lastOrder = order
	f.lastPage = page
	f.lastPageSize = pageSize

	start := (page - 1) * pageSize
	if start >= len(f.recipes) {
		return nil, int64(len(f.recipes)), nil
	}
	end := start + pageSize
	if end > len(f.recipes) {
		end = len(f.recipes)
	}
	return f.recipes[start:end], int64(len(f.recipes)), nil
}

func (f *fakeSearchRepository) ReconcileRatings(_ context.Context) (int, int, error) {
	return len(f.recipes), 0, nil
}

func manyRecipes(n int) []*entities.Recipe {
	recipes := make([]*entities.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, &entities.Recipe{ID: uuid.New(), Title: "Рецепт"})
	}
	return recipes
}

func TestSearchRecipesPagination(t *testing.T) {
	repo := &fakeSearchRepository{recipes: manyRecipes(25)}
	service := NewSearchService(repo)
	ctx := context.Background()

	page, err := service.SearchRecipes(ctx, domain.SearchCriteria{}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Recipes) != 5 {
		t.Errorf("page 3 of 25 should hold 5 recipes, got %d", len(page.Recipes))
	}
	if page.TotalCount != 25 || page.TotalPages != 3 {
		t.Errorf("totals = %d/%d, want 25/3", page.TotalCount, page.TotalPages)
	}
	if repo.lastPageSize != DefaultPageSize {
		t.Errorf("page surface should use page size %d, got %d", DefaultPageSize, repo.lastPageSize)
	}

	page, err = service.SearchRecipes(ctx, domain.SearchCriteria{}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Recipes) != 0 {
		t.Errorf("page past the end should be empty, got %d recipes", len(page.Recipes))
	}
}

func TestSearchRecipesNormalizesPage(t *testing.T) {
	repo := &fakeSearchRepository{recipes: manyRecipes(3)}
	service := NewSearchService(repo)

	if _, err := service.SearchRecipes(context.Background(), domain.SearchCriteria{}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPage != 1 {
		t.Errorf("page 0 should be clamped to 1, got %d", repo.lastPage)
	}
}

func TestSearchRecipesJSONCapsPageSize(t *testing.T) {
	repo := &fakeSearchRepository{recipes: manyRecipes(40)}
	service := NewSearchService(repo)

	page, err := service.SearchRecipesJSON(context.Background(), domain.SearchCriteria{}, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPageSize != MaxPageSize {
		t.Errorf("requested size 100 should be capped to %d, got %d", MaxPageSize, repo.lastPageSize)
	}
	if len(page.Recipes) != MaxPageSize {
		t.Errorf("got %d recipes, want %d", len(page.Recipes), MaxPageSize)
	}
}

func TestSearchRecipesJSONDefaultsToCap(t *testing.T) {
	repo := &fakeSearchRepository{recipes: manyRecipes(40)}
	service := NewSearchService(repo)

	page, err := service.SearchRecipesJSON(context.Background(), domain.SearchCriteria{}, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPageSize != MaxPageSize {
		t.Errorf("unset size should default to %d, got %d", MaxPageSize, repo.lastPageSize)
	}
	if len(page.Recipes) != MaxPageSize {
		t.Errorf("got %d recipes, want %d", len(page.Recipes), MaxPageSize)
	}
}

func TestSearchRecipesPassesSortAndFilters(t *testing.T) {
	repo := &fakeSearchRepository{}
	service := NewSearchService(repo)

	_, err := service.SearchRecipes(context.Background(), domain.SearchCriteria{
		Query:  "суп",
		SortBy: "rating_high",
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastOrder != "recipes.rating desc, recipes.created_at desc" {
		t.Errorf("order = %q", repo.lastOrder)
	}
	if len(repo.lastFilters.Words) != 1 || repo.lastFilters.Words[0] != "суп" {
		t.Errorf("filters = %+v", repo.lastFilters)
	}
}

func TestReconcileRatings(t *testing.T) {
	repo := &fakeSearchRepository{recipes: manyRecipes(7)}
	service := NewSearchService(repo)

	res, err := service.ReconcileRatings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RecipesChecked != 7 || res.RecipesUpdated != 0 {
		t.Errorf("got %+v", res)
	}
}

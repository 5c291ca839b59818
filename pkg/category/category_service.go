package category

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context, page, limit int) ([]domain.CategoryResponse, int64, error)
		GetCategoryBySlug(ctx context.Context, slug string) (domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	}

	exists, err := s.categoryRepository.CategoryExists(ctx, req.Name, categorySlug)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if exists {
		return domain.CategoryResponse{}, domain.ErrCategoryExists
	}

	category := &entities.Category{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: categorySlug,
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}, nil
}

func (s *categoryService) GetCategories(ctx context.Context, page, limit int) ([]domain.CategoryResponse, int64, error) {
	categories, count, err := s.categoryRepository.GetCategories(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, domain.CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Slug: c.Slug,
		})
	}
	return res, count, nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, categorySlug string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}, nil
}

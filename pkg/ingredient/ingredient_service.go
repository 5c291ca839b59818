package ingredient

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSuggestions = 3

type (
	IngredientService interface {
		ProposeNewIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.ProposeIngredientResult, error)
		GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error)
		SearchIngredients(ctx context.Context, pattern string) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

// SimilarNames returns up to limit existing names that look like near
// duplicates of name: length differs by at most two characters and one is a
// substring of the other, ignoring case.
func SimilarNames(name string, existing []string, limit int) []string {
	lower := strings.ToLower(name)
	length := len([]rune(name))

	var similar []string
	for _, candidate := range existing {
		diff := len([]rune(candidate)) - length
		if diff < -2 || diff > 2 {
			continue
		}
		candidateLower := strings.ToLower(candidate)
		if strings.Contains(candidateLower, lower) || strings.Contains(lower, candidateLower) {
			similar = append(similar, candidate)
			if len(similar) == limit {
				break
			}
		}
	}
	return similar
}

func (s *ingredientService) ProposeNewIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.ProposeIngredientResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ProposeIngredientResult{}, domain.ErrEmptyIngredientName
	}

	if _, err := s.ingredientRepository.GetIngredientByName(ctx, name); err == nil {
		return domain.ProposeIngredientResult{}, domain.ErrIngredientExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProposeIngredientResult{}, err
	}

	names, err := s.ingredientRepository.GetIngredientNames(ctx)
	if err != nil {
		return domain.ProposeIngredientResult{}, err
	}

	if similar := SimilarNames(name, names, maxSuggestions); len(similar) > 0 {
		return domain.ProposeIngredientResult{Suggestions: similar}, domain.ErrSimilarIngredients
	}

	ingredient := &entities.Ingredient{
		ID:          uuid.New(),
		Name:        name,
		DefaultUnit: strings.TrimSpace(req.DefaultUnit),
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.ProposeIngredientResult{}, err
	}

	return domain.ProposeIngredientResult{
		Ingredient: &domain.IngredientResponse{
			ID:          ingredient.ID.String(),
			Name:        ingredient.Name,
			DefaultUnit: ingredient.DefaultUnit,
		},
	}, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(ingredients), count, nil
}

func (s *ingredientService) SearchIngredients(ctx context.Context, pattern string) ([]domain.IngredientResponse, error) {
	pattern = strings.TrimSpace(pattern)

	// Short patterns return the full list so the recipe form can populate
	// its picker, mirroring the list endpoint's ordering.
	if len([]rune(pattern)) < 2 {
		ingredients, _, err := s.ingredientRepository.GetIngredients(ctx, 1, 100)
		if err != nil {
			return nil, err
		}
		return toResponses(ingredients), nil
	}

	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, pattern, 10)
	if err != nil {
		return nil, err
	}
	return toResponses(ingredients), nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{
		ID:          ingredient.ID.String(),
		Name:        ingredient.Name,
		DefaultUnit: ingredient.DefaultUnit,
	}, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// PROTECT semantics: refuse while any recipe line references it.
	usage, err := s.ingredientRepository.CountIngredientUsage(ctx, id)
	if err != nil {
		return err
	}
	if usage > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func toResponses(ingredients []*entities.Ingredient) []domain.IngredientResponse {
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.IngredientResponse{
			ID:          i.ID.String(),
			Name:        i.Name,
			DefaultUnit: i.DefaultUnit,
		})
	}
	return res
}

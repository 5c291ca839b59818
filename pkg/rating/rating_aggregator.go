package rating

import (
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	// Aggregator recomputes a recipe's stored rating from its rating rows.
	// Callers pass the transaction handle so the recompute observes the
	// rating write it follows.
	Aggregator interface {
		Recompute(ctx context.Context, db *gorm.DB, recipeID uuid.UUID) (decimal.Decimal, error)
	}

	// ratingStore is the slice of the database the recompute touches.
	ratingStore interface {
		recipeRating(ctx context.Context, recipeID uuid.UUID) (decimal.Decimal, error)
		ratingValues(ctx context.Context, recipeID uuid.UUID) ([]int, error)
		setRecipeRating(ctx context.Context, recipeID uuid.UUID, value decimal.Decimal) error
	}

	aggregator struct{}

	gormRatingStore struct {
		db *gorm.DB
	}
)

func NewAggregator() Aggregator {
	return &aggregator{}
}

var maxRating = decimal.NewFromInt(5)

// Aggregate returns the arithmetic mean of values rounded half-up to two
// decimal places, or exactly 0.00 when values is empty. A mean outside the
// valid 0..5 band degrades to 0.00; integer inputs keep that unreachable.
func Aggregate(values []int) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	var sum int64
	for _, v := range values {
		sum += int64(v)
	}

	mean := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(values)))).
		Round(2)

	if mean.IsNegative() || mean.GreaterThan(maxRating) {
		return decimal.Zero
	}
	return mean
}

func (a *aggregator) Recompute(ctx context.Context, db *gorm.DB, recipeID uuid.UUID) (decimal.Decimal, error) {
	return recompute(ctx, gormRatingStore{db: db}, recipeID)
}

func recompute(ctx context.Context, store ratingStore, recipeID uuid.UUID) (decimal.Decimal, error) {
	// A cascade delete of the recipe may have removed it before the rating
	// cleanup runs; that is not an error.
	current, err := store.recipeRating(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	values, err := store.ratingValues(ctx, recipeID)
	if err != nil {
		return decimal.Zero, err
	}

	newValue := Aggregate(values)
	if current.Equal(newValue) {
		return newValue, nil
	}

	if err := store.setRecipeRating(ctx, recipeID, newValue); err != nil {
		return decimal.Zero, err
	}
	return newValue, nil
}

func (s gormRatingStore) recipeRating(ctx context.Context, recipeID uuid.UUID) (decimal.Decimal, error) {
	var recipe entities.Recipe
	if err := s.db.WithContext(ctx).
		Select("id", "rating").
		Where("id = ?", recipeID).
		First(&recipe).Error; err != nil {
		return decimal.Zero, err
	}
	return recipe.Rating, nil
}

func (s gormRatingStore) ratingValues(ctx context.Context, recipeID uuid.UUID) ([]int, error) {
	var values []int
	if err := s.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Pluck("value", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (s gormRatingStore) setRecipeRating(ctx context.Context, recipeID uuid.UUID, value decimal.Decimal) error {
	return s.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("rating", value).Error
}

package recipe

import (
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/rating"
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, page, limit int) ([]*entities.Recipe, int64, error)
		GetLatestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines LineDiff) error
		DeleteRecipe(ctx context.Context, id string) error

		AddComment(ctx context.Context, comment *entities.Comment) error
		UpsertRating(ctx context.Context, rt *entities.Rating) (decimal.Decimal, error)
		DeleteRating(ctx context.Context, recipeID, userID uuid.UUID) (decimal.Decimal, error)
		GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (int, error)
		AddRecipeImage(ctx context.Context, image *entities.RecipeImage) error
		GetRecipeImage(ctx context.Context, id string) (*entities.RecipeImage, error)
		DeleteRecipeImage(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db         *gorm.DB
		aggregator rating.Aggregator
	}
)

func NewRecipeRepository(db *gorm.DB, aggregator rating.Aggregator) RecipeRepository {
	return &recipeRepository{db: db, aggregator: aggregator}
}

// CreateRecipe persists the recipe together with its nested ingredient lines
// and images as one transaction (gorm creates associations with the parent).
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Ingredients.Ingredient").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Ingredients.Ingredient").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Comments.User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetLatestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe saves the recipe fields and applies the ingredient line diff
// as one atomic batch.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines LineDiff) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}

		if len(lines.ToDelete) > 0 {
			if err := tx.Where("id IN ?", lines.ToDelete).
				Delete(&entities.RecipeIngredient{}).Error; err != nil {
				return err
			}
		}
		for i := range lines.ToUpdate {
			if err := tx.Model(&entities.RecipeIngredient{}).
				Where("id = ?", lines.ToUpdate[i].ID).
				Updates(map[string]interface{}{
					"amount": lines.ToUpdate[i].Amount,
					"unit":   lines.ToUpdate[i].Unit,
				}).Error; err != nil {
				return err
			}
		}
		if len(lines.ToCreate) > 0 {
			if err := tx.Create(&lines.ToCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&entities.Recipe{ID: recipeID}).Error
}

func (r *recipeRepository) AddComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// UpsertRating writes the user's rating (create or replace) and recomputes
// the recipe aggregate within the same transaction, so the last committed
// write always leaves a fresh aggregate behind.
func (r *recipeRepository) UpsertRating(ctx context.Context, rt *entities.Rating) (decimal.Decimal, error) {
	var newValue decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "created_at"}),
		}).Create(rt).Error; err != nil {
			return err
		}

		value, err := r.aggregator.Recompute(ctx, tx, rt.RecipeID)
		if err != nil {
			return err
		}
		newValue = value
		return nil
	})
	return newValue, err
}

func (r *recipeRepository) DeleteRating(ctx context.Context, recipeID, userID uuid.UUID) (decimal.Decimal, error) {
	var newValue decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			Delete(&entities.Rating{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		value, err := r.aggregator.Recompute(ctx, tx, recipeID)
		if err != nil {
			return err
		}
		newValue = value
		return nil
	})
	return newValue, err
}

func (r *recipeRepository) GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (int, error) {
	var rt entities.Rating
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&rt).Error; err != nil {
		return 0, err
	}
	return rt.Value, nil
}

func (r *recipeRepository) AddRecipeImage(ctx context.Context, image *entities.RecipeImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *recipeRepository) GetRecipeImage(ctx context.Context, id string) (*entities.RecipeImage, error) {
	var image entities.RecipeImage
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *recipeRepository) DeleteRecipeImage(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.RecipeImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package search

import (
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/rating"
	"context"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		SearchRecipes(ctx context.Context, filters Filters, order string, page, pageSize int) ([]*entities.Recipe, int64, error)
		ReconcileRatings(ctx context.Context) (checked, updated int, err error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchRecipes(ctx context.Context, filters Filters, order string, page, pageSize int) ([]*entities.Recipe, int64, error) {
	q := filters.Apply(r.db.WithContext(ctx))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	if err := q.
		Preload("Author").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// ReconcileRatings recomputes every recipe's stored rating from its rating
// rows and repairs the ones that drifted.
func (r *searchRepository) ReconcileRatings(ctx context.Context) (int, int, error) {
	var checked, updated int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipes []entities.Recipe
		if err := tx.Select("id", "rating").Find(&recipes).Error; err != nil {
			return err
		}

		for i := range recipes {
			checked++

			var values []int
			if err := tx.Model(&entities.Rating{}).
				Where("recipe_id = ?", recipes[i].ID).
				Pluck("value", &values).Error; err != nil {
				return err
			}

			want := rating.Aggregate(values)
			if recipes[i].Rating.Equal(want) {
				continue
			}

			if err := tx.Model(&entities.Recipe{}).
				Where("id = ?", recipes[i].ID).
				Update("rating", want).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})

	return checked, updated, err
}

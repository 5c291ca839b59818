package collection

import (
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error)
		GetCollectionWithItems(ctx context.Context, id string) (*entities.Collection, error)
		GetCollectionsByOwner(ctx context.Context, ownerID string) ([]*entities.Collection, error)
		GetPublicCollections(ctx context.Context) ([]*entities.Collection, error)
		UpdateCollection(ctx context.Context, collection *entities.Collection) error
		DeleteCollection(ctx context.Context, id string) error

		CountItems(ctx context.Context, collectionID uuid.UUID) (int64, error)
		IsRecipeInCollection(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error)
		ToggleItem(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error)
		AddItem(ctx context.Context, item *entities.CollectionItem) (bool, error)
		RemoveItem(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionWithItems(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Preload("Items.Recipe").
		Preload("Items.Recipe.Author").
		Preload("Items.Recipe.Category").
		Preload("Items.Recipe.Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, id asc") }).
		Where("id = ?", id).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionsByOwner(ctx context.Context, ownerID string) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) GetPublicCollections(ctx context.Context) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("is_public = ?", true).
		Order("created_at desc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, id string) error {
	collectionID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).
			Delete(&entities.CollectionItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", collectionID).
			Delete(&entities.Collection{}).Error
	})
}

func (r *collectionRepository) CountItems(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CollectionItem{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *collectionRepository) IsRecipeInCollection(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CollectionItem{}).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleItem flips membership within one transaction: delete wins when the
// pair exists, otherwise a row is created. The unique index on
// (collection_id, recipe_id) keeps concurrent toggles from doubling up.
func (r *collectionRepository) ToggleItem(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error) {
	var inCollection bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
			Delete(&entities.CollectionItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			inCollection = false
			return nil
		}

		item := entities.CollectionItem{
			ID:           uuid.New(),
			CollectionID: collectionID,
			RecipeID:     recipeID,
		}
		if err := tx.Create(&item).Error; err != nil {
			// A concurrent add can win the unique index between our delete
			// and create; the recipe is in the collection either way.
			if !isUniqueViolation(err) {
				return err
			}
		}
		inCollection = true
		return nil
	})
	return inCollection, err
}

// isUniqueViolation reports whether err is the (collection_id, recipe_id)
// unique index rejecting a duplicate pair.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// AddItem reports false without error when the pair already exists, so the
// caller can surface a distinguishable conflict.
func (r *collectionRepository) AddItem(ctx context.Context, item *entities.CollectionItem) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.CollectionItem{}).
			Where("collection_id = ? AND recipe_id = ?", item.CollectionID, item.RecipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			created = false
			return nil
		}
		if err := tx.Create(item).Error; err != nil {
			// Lost a check-then-act race against the unique index.
			if !isUniqueViolation(err) {
				return err
			}
			created = false
			return nil
		}
		created = true
		return nil
	})
	return created, err
}

func (r *collectionRepository) RemoveItem(ctx context.Context, collectionID, recipeID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&entities.CollectionItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

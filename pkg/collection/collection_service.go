package collection

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionService interface {
		CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.CollectionResponse, error)
		UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, userID string) error
		DeleteCollection(ctx context.Context, id string, userID string) error
		GetMyCollections(ctx context.Context, userID string) ([]domain.CollectionResponse, error)
		GetPublicCollections(ctx context.Context) ([]domain.CollectionResponse, error)
		GetCollectionDetail(ctx context.Context, id string, userID string) (domain.CollectionDetailResponse, error)
		ToggleRecipe(ctx context.Context, collectionID, recipeID string, userID string) (domain.ToggleCollectionItemResponse, error)
		AddRecipe(ctx context.Context, req domain.CollectionItemRequest, userID string) error
		RemoveRecipe(ctx context.Context, req domain.CollectionItemRequest, userID string) error
		GetMembershipFlags(ctx context.Context, recipeID string, userID string) ([]domain.CollectionMembership, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.CollectionResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CollectionResponse{}, domain.ErrParseUUID
	}

	collection := &entities.Collection{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if err := s.collectionRepository.CreateCollection(ctx, collection); err != nil {
		return domain.CollectionResponse{}, err
	}

	return domain.CollectionResponse{
		ID:          collection.ID.String(),
		Title:       collection.Title,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		ItemsCount:  0,
		CreatedAt:   collection.CreatedAt,
	}, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, userID string) error {
	collection, err := s.ownedCollection(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		collection.Title = req.Title
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.IsPublic != nil {
		collection.IsPublic = *req.IsPublic
	}

	return s.collectionRepository.UpdateCollection(ctx, collection)
}

func (s *collectionService) DeleteCollection(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedCollection(ctx, id, userID); err != nil {
		return err
	}
	return s.collectionRepository.DeleteCollection(ctx, id)
}

func (s *collectionService) GetMyCollections(ctx context.Context, userID string) ([]domain.CollectionResponse, error) {
	collections, err := s.collectionRepository.GetCollectionsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, collections)
}

func (s *collectionService) GetPublicCollections(ctx context.Context) ([]domain.CollectionResponse, error) {
	collections, err := s.collectionRepository.GetPublicCollections(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, collections)
}

func (s *collectionService) GetCollectionDetail(ctx context.Context, id string, userID string) (domain.CollectionDetailResponse, error) {
	collection, err := s.collectionRepository.GetCollectionWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CollectionDetailResponse{}, domain.ErrCollectionNotFound
		}
		return domain.CollectionDetailResponse{}, err
	}

	// Private collections are visible to their owner only.
	if collection.OwnerID.String() != userID && !collection.IsPublic {
		return domain.CollectionDetailResponse{}, domain.ErrCollectionPrivate
	}

	items := make([]domain.CollectionItemResponse, 0, len(collection.Items))
	for i := range collection.Items {
		item := collection.Items[i]
		if item.Recipe == nil {
			continue
		}
		items = append(items, domain.CollectionItemResponse{
			ID:       item.ID.String(),
			Note:     item.Note,
			Position: item.Position,
			Recipe:   recipe.Summarize(item.Recipe),
		})
	}

	res := domain.CollectionDetailResponse{
		CollectionResponse: domain.CollectionResponse{
			ID:          collection.ID.String(),
			Title:       collection.Title,
			Description: collection.Description,
			IsPublic:    collection.IsPublic,
			ItemsCount:  int64(len(items)),
			CreatedAt:   collection.CreatedAt,
		},
		Items: items,
	}
	if collection.Owner != nil {
		res.Owner = collection.Owner.Username
	}
	return res, nil
}

func (s *collectionService) ToggleRecipe(ctx context.Context, collectionID, recipeID string, userID string) (domain.ToggleCollectionItemResponse, error) {
	collection, err := s.ownedCollection(ctx, collectionID, userID)
	if err != nil {
		return domain.ToggleCollectionItemResponse{}, err
	}

	recipeUUID, err := s.existingRecipeID(ctx, recipeID)
	if err != nil {
		return domain.ToggleCollectionItemResponse{}, err
	}

	inCollection, err := s.collectionRepository.ToggleItem(ctx, collection.ID, recipeUUID)
	if err != nil {
		return domain.ToggleCollectionItemResponse{}, err
	}
	return domain.ToggleCollectionItemResponse{InCollection: inCollection}, nil
}

func (s *collectionService) AddRecipe(ctx context.Context, req domain.CollectionItemRequest, userID string) error {
	collection, err := s.ownedCollection(ctx, req.CollectionID, userID)
	if err != nil {
		return err
	}

	recipeUUID, err := s.existingRecipeID(ctx, req.RecipeID)
	if err != nil {
		return err
	}

	created, err := s.collectionRepository.AddItem(ctx, &entities.CollectionItem{
		ID:           uuid.New(),
		CollectionID: collection.ID,
		RecipeID:     recipeUUID,
		Note:         req.Note,
	})
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrAlreadyInCollection
	}
	return nil
}

func (s *collectionService) RemoveRecipe(ctx context.Context, req domain.CollectionItemRequest, userID string) error {
	collection, err := s.ownedCollection(ctx, req.CollectionID, userID)
	if err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	removed, err := s.collectionRepository.RemoveItem(ctx, collection.ID, recipeUUID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotInCollection
	}
	return nil
}

func (s *collectionService) GetMembershipFlags(ctx context.Context, recipeID string, userID string) ([]domain.CollectionMembership, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	collections, err := s.collectionRepository.GetCollectionsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships := make([]domain.CollectionMembership, 0, len(collections))
	for _, c := range collections {
		inCollection, err := s.collectionRepository.IsRecipeInCollection(ctx, c.ID, recipeUUID)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, domain.CollectionMembership{
			ID:           c.ID.String(),
			Title:        c.Title,
			InCollection: inCollection,
		})
	}
	return memberships, nil
}

func (s *collectionService) ownedCollection(ctx context.Context, id string, userID string) (*entities.Collection, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}
	if collection.OwnerID.String() != userID {
		return nil, domain.ErrNotCollectionOwner
	}
	return collection, nil
}

func (s *collectionService) existingRecipeID(ctx context.Context, recipeID string) (uuid.UUID, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrRecipeNotFound
		}
		return uuid.Nil, err
	}
	return recipeUUID, nil
}

func (s *collectionService) toResponses(ctx context.Context, collections []*entities.Collection) ([]domain.CollectionResponse, error) {
	res := make([]domain.CollectionResponse, 0, len(collections))
	for _, c := range collections {
		count, err := s.collectionRepository.CountItems(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		item := domain.CollectionResponse{
			ID:          c.ID.String(),
			Title:       c.Title,
			Description: c.Description,
			IsPublic:    c.IsPublic,
			ItemsCount:  count,
			CreatedAt:   c.CreatedAt,
		}
		if c.Owner != nil {
			item.Owner = c.Owner.Username
		}
		res = append(res, item)
	}
	return res, nil
}

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCollection     = "collection created successfully"
	MessageSuccessUpdateCollection     = "collection updated successfully"
	MessageSuccessDeleteCollection     = "collection deleted successfully"
	MessageSuccessGetCollections       = "collections retrieved successfully"
	MessageSuccessGetCollection        = "collection retrieved successfully"
	MessageSuccessAddToCollection      = "recipe added to collection"
	MessageSuccessRemoveFromCollection = "recipe removed from collection"

	MessageFailedCreateCollection     = "failed to create collection"
	MessageFailedUpdateCollection     = "failed to update collection"
	MessageFailedDeleteCollection     = "failed to delete collection"
	MessageFailedGetCollections       = "failed to retrieve collections"
	MessageFailedGetCollection        = "failed to retrieve collection"
	MessageFailedToggleCollection     = "failed to toggle recipe in collection"
	MessageFailedAddToCollection      = "failed to add recipe to collection"
	MessageFailedRemoveFromCollection = "failed to remove recipe from collection"

	ErrCollectionNotFound  = errors.New("collection not found")
	ErrNotCollectionOwner  = errors.New("collection belongs to another user")
	ErrCollectionPrivate   = errors.New("collection is private")
	ErrAlreadyInCollection = errors.New("recipe already in this collection")
	ErrNotInCollection     = errors.New("recipe not in this collection")
)

type (
	CreateCollectionRequest struct {
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"omitempty"`
		IsPublic    bool   `json:"is_public"`
	}

	UpdateCollectionRequest struct {
		Title       string  `json:"title" validate:"omitempty,max=200"`
		Description *string `json:"description" validate:"omitempty"`
		IsPublic    *bool   `json:"is_public"`
	}

	CollectionItemRequest struct {
		CollectionID string `json:"collection_id" validate:"required,uuid"`
		RecipeID     string `json:"recipe_id" validate:"required,uuid"`
		Note         string `json:"note" validate:"omitempty,max=255"`
	}

	CollectionResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		IsPublic    bool      `json:"is_public"`
		Owner       string    `json:"owner,omitempty"`
		ItemsCount  int64     `json:"items_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CollectionItemResponse struct {
		ID       string        `json:"id"`
		Note     string        `json:"note,omitempty"`
		Position int           `json:"position"`
		Recipe   RecipeSummary `json:"recipe"`
	}

	CollectionDetailResponse struct {
		CollectionResponse
		Items []CollectionItemResponse `json:"items"`
	}

	// CollectionMembership flags whether a given recipe is in one of the
	// acting user's collections, for the recipe detail page.
	CollectionMembership struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		InCollection bool   `json:"in_collection"`
	}

	ToggleCollectionItemResponse struct {
		InCollection bool `json:"in_collection"`
	}
)

package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessAddComment   = "comment added successfully"
	MessageSuccessRateRecipe   = "rating saved successfully"
	MessageSuccessDeleteRating = "rating removed successfully"
	MessageSuccessUploadImage  = "recipe image uploaded successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"
	MessageFailedAddComment   = "failed to add comment"
	MessageFailedRateRecipe   = "failed to save rating"
	MessageFailedDeleteRating = "failed to remove rating"
	MessageFailedUploadImage  = "failed to upload recipe image"
	MessageSuccessDeleteImage = "recipe image deleted successfully"
	MessageFailedDeleteImage  = "failed to delete recipe image"

	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrRatingNotFound          = errors.New("rating not found")
	ErrNotRecipeOwner          = errors.New("recipe belongs to another user")
	ErrInvalidDifficulty       = errors.New("difficulty must be one of easy, medium, hard")
	ErrInvalidCookTime         = errors.New("cook time must be positive")
	ErrInvalidAmount           = errors.New("ingredient amount must be positive")
	ErrDuplicateIngredientLine = errors.New("ingredient already added to this recipe")
	ErrInvalidImageFormat      = errors.New("invalid image format")
	ErrImageNotFound           = errors.New("recipe image not found")
)

type (
	RecipeIngredientLineRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		Amount       string `json:"amount" validate:"required"`
		Unit         string `json:"unit" validate:"omitempty,max=32"`
	}

	CreateRecipeRequest struct {
		Title       string                        `json:"title" validate:"required,max=200"`
		Description string                        `json:"description" validate:"omitempty"`
		Instruction string                        `json:"instruction" validate:"required"`
		CookTime    int                           `json:"cook_time" validate:"required,min=1"`
		CategoryID  string                        `json:"category_id" validate:"omitempty,uuid"`
		Difficulty  string                        `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Ingredients []RecipeIngredientLineRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	UpdateRecipeRequest struct {
		Title       string                        `json:"title" validate:"omitempty,max=200"`
		Description *string                       `json:"description" validate:"omitempty"`
		Instruction string                        `json:"instruction" validate:"omitempty"`
		CookTime    int                           `json:"cook_time" validate:"omitempty,min=1"`
		CategoryID  *string                       `json:"category_id" validate:"omitempty"`
		Difficulty  string                        `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Ingredients []RecipeIngredientLineRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		IsMain   bool                  `json:"is_main" form:"is_main"`
		Position int                   `json:"position" form:"position"`
	}

	AddCommentRequest struct {
		Text string `json:"text" validate:"required"`
	}

	RateRecipeRequest struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}

	RecipeIngredientLine struct {
		ID           string          `json:"id"`
		IngredientID string          `json:"ingredient_id"`
		Name         string          `json:"name"`
		Amount       decimal.Decimal `json:"amount"`
		Unit         string          `json:"unit,omitempty"`
	}

	RecipeImageResponse struct {
		ID       string `json:"id"`
		ImageURL string `json:"image_url"`
		IsMain   bool   `json:"is_main"`
		Position int    `json:"position"`
	}

	CommentResponse struct {
		ID        string    `json:"id"`
		Author    string    `json:"author"`
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"created_at"`
	}

	// RecipeSummary is the shared projection returned by recipe lists and search.
	RecipeSummary struct {
		ID                string          `json:"id"`
		Title             string          `json:"title"`
		Description       string          `json:"description"`
		Author            string          `json:"author"`
		Rating            decimal.Decimal `json:"rating"`
		CookTime          int             `json:"cook_time"`
		Difficulty        string          `json:"difficulty"`
		DifficultyDisplay string          `json:"difficulty_display"`
		Category          string          `json:"category,omitempty"`
		ImageURL          *string         `json:"image_url"`
		URL               string          `json:"url"`
	}

	RecipeDetailResponse struct {
		ID          string                 `json:"id"`
		Title       string                 `json:"title"`
		Description string                 `json:"description"`
		Instruction string                 `json:"instruction"`
		CookTime    int                    `json:"cook_time"`
		Difficulty  string                 `json:"difficulty"`
		Category    string                 `json:"category,omitempty"`
		Author      string                 `json:"author"`
		Rating      decimal.Decimal        `json:"rating"`
		MyRating    int                    `json:"my_rating,omitempty"`
		Ingredients []RecipeIngredientLine `json:"ingredients"`
		Images      []RecipeImageResponse  `json:"images"`
		Comments    []CommentResponse      `json:"comments"`
		Collections []CollectionMembership `json:"collections,omitempty"`
		CreatedAt   time.Time              `json:"created_at"`
		UpdatedAt   time.Time              `json:"updated_at"`
	}
)

package domain

import (
	"errors"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrIngredientExists    = errors.New("ingredient with this name already exists")
	ErrSimilarIngredients  = errors.New("similar ingredients already exist")
	ErrIngredientInUse     = errors.New("ingredient is used by existing recipes")
	ErrEmptyIngredientName = errors.New("ingredient name must not be empty")
)

type (
	CreateIngredientRequest struct {
		Name        string `json:"name" validate:"required,max=150"`
		DefaultUnit string `json:"default_unit" validate:"omitempty,max=32"`
	}

	IngredientResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		DefaultUnit string `json:"default_unit,omitempty"`
	}

	// ProposeIngredientResult reports the dedup outcome: either the created
	// ingredient, or up to three existing names the caller should confirm against.
	ProposeIngredientResult struct {
		Ingredient  *IngredientResponse `json:"ingredient,omitempty"`
		Suggestions []string            `json:"similar,omitempty"`
	}
)
